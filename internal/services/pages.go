package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/artcom/cheminova-backend/internal/models"
	"github.com/artcom/cheminova-backend/internal/pages"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrInvalidPage is returned when a page violates the page type rules
var ErrInvalidPage = errors.New("invalid page")

// SavePage validates a page against its page type, places it in the tree when
// it has no path yet, stores it and rebuilds its image references
func SavePage(db *gorm.DB, page *models.Page) error {
	pageType, ok := pages.Lookup(page.Type)
	if !ok {
		return fmt.Errorf("%w: unknown page type %q", ErrInvalidPage, page.Type)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		parentType := ""
		var parent *models.Page
		if page.ParentID != nil {
			parent = &models.Page{}
			if err := tx.First(parent, *page.ParentID).Error; err != nil {
				return fmt.Errorf("%w: parent %d: %v", ErrInvalidPage, *page.ParentID, err)
			}
			parentType = parent.Type
		}

		if !pageType.AllowsParent(parentType) {
			return fmt.Errorf("%w: %s cannot be placed below %q", ErrInvalidPage, page.Type, parentType)
		}

		parentPath := ""
		if parent != nil {
			parentPath = parent.Path
		}
		if page.Path == "" {
			path, err := nextChildPath(tx.Model(&models.Page{}), page.ParentID, parentPath)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidPage, err)
			}
			page.Path = path
		} else if err := checkTreePath(page.Path, parentPath); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidPage, page.Slug, err)
		}
		page.Depth = len(page.Path) / models.PathStepLength

		fields, err := page.Content.Fields()
		if err != nil {
			return fmt.Errorf("%w: content: %v", ErrInvalidPage, err)
		}

		if err := tx.Save(page).Error; err != nil {
			return err
		}

		return rebuildReferences(tx, page.ID, pageType.ImageReferences(fields))
	})
}

// rebuildReferences replaces the reference index rows of a page
func rebuildReferences(tx *gorm.DB, pageID uint64, refs map[string]uint64) error {
	if err := tx.Where("page_id = ?", pageID).Delete(&models.PageImageReference{}).Error; err != nil {
		return err
	}
	if len(refs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(refs))
	for field := range refs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	rows := make([]models.PageImageReference, 0, len(refs))
	for _, field := range fields {
		rows = append(rows, models.PageImageReference{PageID: pageID, ImageID: refs[field], Field: field})
	}
	return tx.Create(&rows).Error
}

// PublishPage marks a page live or takes it offline
func PublishPage(db *gorm.DB, pageID uint64, live bool) error {
	res := db.Model(&models.Page{}).Where("id = ?", pageID).Update("live", live)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LivePages returns every live page ordered by tree path
func LivePages(ctx context.Context, db *gorm.DB) ([]models.Page, error) {
	var result []models.Page
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		WithContext(ctx).
		Preload("Locale").
		Where("live = ?", true).
		Order("path").
		Find(&result).Error

	return result, err
}

// LocaleID resolves a language code, returning nil when the locale is unknown
func LocaleID(ctx context.Context, db *gorm.DB, languageCode string) (*uint64, error) {
	var ids []uint64
	err := db.WithContext(ctx).
		Model(&models.Locale{}).
		Where("language_code = ?", languageCode).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	return &ids[0], nil
}

// ImagesByID loads the images with the given ids keyed by id
func ImagesByID(ctx context.Context, db *gorm.DB, ids []uint64) (map[uint64]models.Image, error) {
	result := make(map[uint64]models.Image, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var images []models.Image
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&images).Error; err != nil {
		return nil, err
	}
	for _, img := range images {
		result[img.ID] = img
	}
	return result, nil
}

// CharactersByPage loads the characters of the given pages keyed by page id
func CharactersByPage(ctx context.Context, db *gorm.DB, pageIDs []uint64) (map[uint64][]models.Character, error) {
	result := make(map[uint64][]models.Character)
	if len(pageIDs) == 0 {
		return result, nil
	}

	var characters []models.Character
	err := db.WithContext(ctx).
		Where("page_id IN ?", pageIDs).
		Order("sort_order").
		Find(&characters).Error
	if err != nil {
		return nil, err
	}
	for _, ch := range characters {
		result[ch.PageID] = append(result[ch.PageID], ch)
	}
	return result, nil
}
