package services

import (
	"context"
	"errors"

	"github.com/artcom/cheminova-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// queryTag marks the image authorization queries in database logs and slow query reports.
const queryTag = "image-auth"

// Repository serves the lookups of the image authorization check.
// It implements imageauth.ImageStore and imageauth.PolicyStore and never writes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository creates a repository over db
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// session returns a silent, tagged session bound to ctx
func (r *Repository) session(ctx context.Context) *gorm.DB {
	return r.DB.Session(&gorm.Session{Logger: r.DB.Logger.LogMode(logger.Silent)}).
		WithContext(ctx).
		Clauses(hints.CommentBefore("select", queryTag))
}

// ImageByFile finds an original image by its storage path, with its collection
func (r *Repository) ImageByFile(ctx context.Context, file string) (*models.Image, error) {
	var img models.Image
	err := r.session(ctx).
		Joins("Collection").
		Where("images.file = ?", file).
		First(&img).Error

	return found(&img, err)
}

// ImageByRenditionFile finds the original image a rendition was derived from, with its collection
func (r *Repository) ImageByRenditionFile(ctx context.Context, file string) (*models.Image, error) {
	rendition := r.DB.Model(&models.Rendition{}).Select("image_id").Where("file = ?", file)

	var img models.Image
	err := r.session(ctx).
		Joins("Collection").
		Where("images.id = (?)", rendition).
		First(&img).Error

	return found(&img, err)
}

// GrantedCollectionPaths returns the paths of the collections on which the user
// holds any of the permissions through group membership
func (r *Repository) GrantedCollectionPaths(ctx context.Context, userID string, permissions []string) ([]string, error) {
	var paths []string
	err := r.session(ctx).
		Table("group_collection_permissions AS gcp").
		Joins("JOIN group_members gm ON gm.group_id = gcp.group_id").
		Joins("JOIN collections c ON c.id = gcp.collection_id").
		Where("gm.user_id = ? AND gcp.permission IN ?", userID, permissions).
		Distinct("c.path").
		Pluck("c.path", &paths).Error

	return paths, err
}

// HasLiveReference reports whether at least one live page references the image
func (r *Repository) HasLiveReference(ctx context.Context, imageID uint64) (bool, error) {
	var pageIDs []uint64
	err := r.session(ctx).
		Model(&models.PageImageReference{}).
		Joins("JOIN pages ON pages.id = page_image_references.page_id").
		Where("page_image_references.image_id = ? AND pages.live = ?", imageID, true).
		Limit(1).
		Pluck("page_image_references.page_id", &pageIDs).Error

	return len(pageIDs) > 0, err
}

// IsApprovedCollection reports whether any character uses the collection as its approved collection
func (r *Repository) IsApprovedCollection(ctx context.Context, collectionID uint64) (bool, error) {
	var characterIDs []uint64
	err := r.session(ctx).
		Model(&models.Character{}).
		Where("approved_collection_id = ?", collectionID).
		Limit(1).
		Pluck("id", &characterIDs).Error

	return len(characterIDs) > 0, err
}

// found maps a missing record to a nil result
func found(img *models.Image, err error) (*models.Image, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}
