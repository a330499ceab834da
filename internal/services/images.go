package services

import (
	"context"
	"errors"

	"github.com/artcom/cheminova-backend/internal/models"
	"gorm.io/gorm"
)

// ListImages returns all images with their collection
func ListImages(ctx context.Context, db *gorm.DB) ([]models.Image, error) {
	var images []models.Image
	err := db.WithContext(ctx).Joins("Collection").Order("images.id").Find(&images).Error
	return images, err
}

// CharacterImages returns the images in a character's approved and not approved
// collections. An unknown character yields no images.
func CharacterImages(ctx context.Context, db *gorm.DB, slug string) ([]models.Image, error) {
	ch, err := characterBySlug(ctx, db, slug)
	if err != nil || ch == nil {
		return []models.Image{}, err
	}
	return imagesInCollections(ctx, db, ch.ApprovedCollectionID, ch.NotApprovedCollectionID)
}

// ApprovedCharacterImages returns the images in a character's approved collection.
// An unknown character yields no images.
func ApprovedCharacterImages(ctx context.Context, db *gorm.DB, slug string) ([]models.Image, error) {
	ch, err := characterBySlug(ctx, db, slug)
	if err != nil || ch == nil {
		return []models.Image{}, err
	}
	return imagesInCollections(ctx, db, ch.ApprovedCollectionID)
}

func characterBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Character, error) {
	var ch models.Character
	err := db.WithContext(ctx).Where("slug = ?", slug).First(&ch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func imagesInCollections(ctx context.Context, db *gorm.DB, collectionIDs ...*uint64) ([]models.Image, error) {
	var ids []uint64
	for _, id := range collectionIDs {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	if len(ids) == 0 {
		return []models.Image{}, nil
	}

	var images []models.Image
	err := db.WithContext(ctx).
		Joins("Collection").
		Where("images.collection_id IN ?", ids).
		Order("images.id").
		Find(&images).Error
	return images, err
}
