package models

import "time"

// Image is an original media asset. File is the storage relative path
// (e.g. "original_images/welcome-bg.png") and identifies at most one record.
type Image struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement"`
	Title        string     `gorm:"size:255;not null"`
	File         string     `gorm:"size:255;uniqueIndex;not null"`
	Width        int        `gorm:"not null;default:0"`
	Height       int        `gorm:"not null;default:0"`
	APIUpload    bool       `gorm:"not null;default:false"`
	CollectionID uint64     `gorm:"not null;index"`
	Collection   Collection `gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Rendition is a resized or transcoded derivative of an Image, keyed by filter spec
// (e.g. "width-400"). Its File lives under "images/".
type Rendition struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	ImageID    uint64 `gorm:"not null;uniqueIndex:idx_rendition_filter"`
	Image      Image  `gorm:"constraint:OnDelete:CASCADE"`
	FilterSpec string `gorm:"size:255;not null;uniqueIndex:idx_rendition_filter"`
	File       string `gorm:"size:255;uniqueIndex;not null"`
	Width      int    `gorm:"not null;default:0"`
	Height     int    `gorm:"not null;default:0"`
}

// TableName overrides the table name for Image
func (Image) TableName() string {
	return "images"
}

// TableName overrides the table name for Rendition
func (Rendition) TableName() string {
	return "renditions"
}
