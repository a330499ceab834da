package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrCollectionOverlap is returned when a character's approved and not approved collections are the same.
var ErrCollectionOverlap = errors.New("approved and not approved collections must differ")

// Locale is a content language.
type Locale struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	LanguageCode string `gorm:"size:16;uniqueIndex;not null"`
}

// Page is a node of the experience page tree. Content holds the fields of the
// page type as a JSON object; image fields carry image ids.
type Page struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	ParentID  *uint64 `gorm:"index"`
	Path      string  `gorm:"size:255;uniqueIndex;not null"`
	Depth     int     `gorm:"not null"`
	Type      string  `gorm:"size:64;not null;index"`
	Title     string  `gorm:"size:255;not null"`
	Slug      string  `gorm:"size:255;not null"`
	LocaleID  *uint64 `gorm:"index"`
	Locale    *Locale
	Live      bool `gorm:"not null;default:false;index"`
	Content   JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PageImageReference records that a page uses an image in one of its fields.
type PageImageReference struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	PageID  uint64 `gorm:"not null;index"`
	ImageID uint64 `gorm:"not null;index"`
	Field   string `gorm:"size:255;not null"`
}

// Character is one of the selectable characters of the experience. Its approved
// collection holds the assets that may be shown publicly.
type Character struct {
	ID                      uint64  `gorm:"primaryKey;autoIncrement"`
	PageID                  uint64  `gorm:"not null;index"`
	SortOrder               int     `gorm:"not null;default:0"`
	Name                    string  `gorm:"size:255"`
	Slug                    string  `gorm:"size:30;index"`
	ApprovedCollectionID    *uint64 `gorm:"index"`
	ApprovedCollection      *Collection
	NotApprovedCollectionID *uint64
	NotApprovedCollection   *Collection
}

// BeforeSave keeps the public and staging collections of a character disjoint.
func (c *Character) BeforeSave(tx *gorm.DB) error {
	if c.ApprovedCollectionID != nil && c.NotApprovedCollectionID != nil &&
		*c.ApprovedCollectionID == *c.NotApprovedCollectionID {
		return ErrCollectionOverlap
	}
	return nil
}

// TableName overrides the table name for Locale
func (Locale) TableName() string {
	return "locales"
}

// TableName overrides the table name for Page
func (Page) TableName() string {
	return "pages"
}

// TableName overrides the table name for PageImageReference
func (PageImageReference) TableName() string {
	return "page_image_references"
}

// TableName overrides the table name for Character
func (Character) TableName() string {
	return "characters"
}
