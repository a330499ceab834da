// Package sitedata moves the content of a site between databases as one JSON
// document: collections, images, renditions, groups with their collection
// grants, locales, pages and characters. Media files are not part of it.
package sitedata

import (
	"io"

	"github.com/artcom/cheminova-backend/internal/types"
	"github.com/goccy/go-json"
)

// FormatVersion is written to every dump
const FormatVersion = 1

// Document is a complete site dump. Every list accepts a single record.
type Document struct {
	Version     int                             `json:"version"`
	Collections types.FlexList[CollectionRecord] `json:"collections"`
	Images      types.FlexList[ImageRecord]      `json:"images"`
	Renditions  types.FlexList[RenditionRecord]  `json:"renditions"`
	Groups      types.FlexList[GroupRecord]      `json:"groups"`
	Grants      types.FlexList[GrantRecord]      `json:"grants"`
	Locales     types.FlexList[LocaleRecord]     `json:"locales"`
	Pages       types.FlexList[PageRecord]       `json:"pages"`
	Characters  types.FlexList[CharacterRecord]  `json:"characters"`
}

type CollectionRecord struct {
	ID       types.FlexUint64  `json:"id"`
	Name     string            `json:"name"`
	Path     string            `json:"path"`
	Depth    int               `json:"depth"`
	ParentID *types.FlexUint64 `json:"parent_id,omitempty"`
}

type ImageRecord struct {
	ID           types.FlexUint64 `json:"id"`
	Title        string           `json:"title"`
	File         string           `json:"file"`
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	APIUpload    bool             `json:"api_upload,omitempty"`
	CollectionID types.FlexUint64 `json:"collection_id"`
}

type RenditionRecord struct {
	ID         types.FlexUint64 `json:"id"`
	ImageID    types.FlexUint64 `json:"image_id"`
	FilterSpec string           `json:"filter_spec"`
	File       string           `json:"file"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
}

// GroupRecord carries the ids of the Authorizer users in the group
type GroupRecord struct {
	ID      types.FlexUint64       `json:"id"`
	Name    string                 `json:"name"`
	Members types.FlexList[string] `json:"members"`
}

type GrantRecord struct {
	GroupID      types.FlexUint64 `json:"group_id"`
	CollectionID types.FlexUint64 `json:"collection_id"`
	Permission   string           `json:"permission"`
}

type LocaleRecord struct {
	ID           types.FlexUint64 `json:"id"`
	LanguageCode string           `json:"language_code"`
}

type PageRecord struct {
	ID       types.FlexUint64  `json:"id"`
	ParentID *types.FlexUint64 `json:"parent_id,omitempty"`
	Path     string            `json:"path,omitempty"`
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Slug     string            `json:"slug"`
	LocaleID *types.FlexUint64 `json:"locale_id,omitempty"`
	Live     bool              `json:"live"`
	Content  map[string]any    `json:"content,omitempty"`
}

type CharacterRecord struct {
	ID                      types.FlexUint64  `json:"id"`
	PageID                  types.FlexUint64  `json:"page_id"`
	SortOrder               int               `json:"sort_order"`
	Name                    string            `json:"name"`
	Slug                    string            `json:"slug"`
	ApprovedCollectionID    *types.FlexUint64 `json:"approved_collection_id,omitempty"`
	NotApprovedCollectionID *types.FlexUint64 `json:"not_approved_collection_id,omitempty"`
}

// Decode reads a document
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Encode writes doc as indented JSON
func (doc *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
