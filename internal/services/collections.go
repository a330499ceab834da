package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/artcom/cheminova-backend/internal/models"
	"gorm.io/gorm"
)

// ErrInvalidCollection is returned when a collection does not fit the collection tree
var ErrInvalidCollection = errors.New("invalid collection")

// AddRootCollection creates a top level collection
func AddRootCollection(db *gorm.DB, name string) (*models.Collection, error) {
	return addCollection(db, nil, name)
}

// AddChildCollection creates a collection as the last child of parent
func AddChildCollection(db *gorm.DB, parent *models.Collection, name string) (*models.Collection, error) {
	if parent == nil || parent.ID == 0 {
		return nil, fmt.Errorf("parent collection required for %q", name)
	}
	return addCollection(db, parent, name)
}

func addCollection(db *gorm.DB, parent *models.Collection, name string) (*models.Collection, error) {
	coll := models.Collection{Name: name}
	if parent != nil {
		coll.ParentID = &parent.ID
	}
	if err := SaveCollection(db, &coll); err != nil {
		return nil, fmt.Errorf("failed to add collection %q: %w", name, err)
	}
	return &coll, nil
}

// SaveCollection inserts a collection, keeping a preset id. Without a path the
// collection is placed as the last child of its parent. A given path must be
// exactly one step below the parent's path.
func SaveCollection(db *gorm.DB, coll *models.Collection) error {
	return db.Transaction(func(tx *gorm.DB) error {
		parentPath := ""
		if coll.ParentID != nil {
			var parent models.Collection
			if err := tx.Select("id", "path").First(&parent, *coll.ParentID).Error; err != nil {
				return fmt.Errorf("%w: parent %d: %v", ErrInvalidCollection, *coll.ParentID, err)
			}
			parentPath = parent.Path
		}

		if coll.Path == "" {
			path, err := nextChildPath(tx.Model(&models.Collection{}), coll.ParentID, parentPath)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidCollection, err)
			}
			coll.Path = path
		} else if err := checkTreePath(coll.Path, parentPath); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidCollection, coll.Name, err)
		}
		coll.Depth = len(coll.Path) / models.PathStepLength

		return tx.Create(coll).Error
	})
}

// nextChildPath returns the path one step after the last sibling below parentID
func nextChildPath(query *gorm.DB, parentID *uint64, parentPath string) (string, error) {
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}

	var last sql.NullString
	if err := query.Select("MAX(path)").Row().Scan(&last); err != nil {
		return "", err
	}

	position := 1
	if last.Valid && last.String != "" {
		n, err := models.PathPosition(last.String)
		if err != nil {
			return "", err
		}
		position = n + 1
	}

	step, err := models.PathStep(position)
	if err != nil {
		return "", err
	}
	return parentPath + step, nil
}

// checkTreePath verifies path is a well formed direct child of parentPath
func checkTreePath(path, parentPath string) error {
	if _, err := models.PathPosition(path); err != nil {
		return err
	}
	if got := models.ParentPath(path); got != parentPath {
		if parentPath == "" {
			return fmt.Errorf("path %s is not a top level path", path)
		}
		return fmt.Errorf("path %s is not below parent path %s", path, parentPath)
	}
	return nil
}
