// Package pages describes the page types of the experience and the page tree.
//
// Each page type is declared once in Registry with the fields it exposes, the
// fields that hold image ids and the page types it may be placed below.
package pages

import (
	"strconv"

	"github.com/goccy/go-json"
)

// Root is the parent type of top level pages.
const Root = ""

// PageType declares the API shape and placement rules of a page type.
type PageType struct {
	Name        string
	Fields      []string
	ImageFields []string
	Parents     []string
	// HasCharacters pages expand their Character rows.
	HasCharacters bool
}

// Registry maps the page type name used in URLs to its declaration.
var Registry = map[string]PageType{
	"characters": {
		Name:          "characters",
		Parents:       []string{Root},
		HasCharacters: true,
	},
	"welcome-language": {
		Name:    "welcome-language",
		Fields:  []string{"choose_language_text", "languages"},
		Parents: []string{Root},
	},
	"welcome-intro": {
		Name:        "welcome-intro",
		Fields:      []string{"description", "site_name", "intro_text", "background_image", "background_image_layer_1", "background_image_layer_2", "background_image_layer_3"},
		ImageFields: []string{"background_image", "background_image_layer_1", "background_image_layer_2", "background_image_layer_3"},
		Parents:     []string{"welcome-language"},
	},
	"welcome": {
		Name:        "welcome",
		Fields:      []string{"description", "site_name", "intro_text", "background_image"},
		ImageFields: []string{"background_image"},
		Parents:     []string{"welcome-intro", Root},
	},
	"welcome-character": {
		Name:        "welcome-character",
		Fields:      []string{"site_name", "onboarding", "background_image"},
		ImageFields: []string{"background_image"},
		Parents:     []string{"welcome"},
	},
	"choose-character": {
		Name:        "choose-character",
		Fields:      []string{"character_type", "name", "description", "select_button_text", "character_image", "background_image"},
		ImageFields: []string{"character_image", "background_image"},
		Parents:     []string{"welcome-character"},
	},
	"introduction": {
		Name:        "introduction",
		Fields:      []string{"character_image", "background_image", "heading", "description", "image"},
		ImageFields: []string{"character_image", "background_image", "image"},
		Parents:     []string{"choose-character"},
	},
	"photo": {
		Name:    "photo",
		Fields:  []string{"heading", "continue_button_text", "image_descriptions"},
		Parents: []string{"introduction"},
	},
	"insight": {
		Name:        "insight",
		Fields:      []string{"heading", "description", "character_image", "top_image", "bottom_image"},
		ImageFields: []string{"character_image", "top_image", "bottom_image"},
		Parents:     []string{"photo"},
	},
	"experience-intro": {
		Name:        "experience-intro",
		Fields:      []string{"heading", "description", "image"},
		ImageFields: []string{"image"},
		Parents:     []string{"insight"},
	},
	"experience-gallery": {
		Name:    "experience-gallery",
		Fields:  []string{"description"},
		Parents: []string{"experience-intro"},
	},
	"collage": {
		Name:    "collage",
		Parents: []string{"experience-gallery"},
	},
	"logbook-record": {
		Name:    "logbook-record",
		Fields:  []string{"heading"},
		Parents: []string{"experience-gallery"},
	},
	"experience-create": {
		Name:    "experience-create",
		Fields:  []string{"heading", "add_text_prompt"},
		Parents: []string{"experience-gallery", "logbook-record"},
	},
	"timeline": {
		Name:    "timeline",
		Parents: []string{"experience-create"},
	},
	"reflection": {
		Name:    "reflection",
		Fields:  []string{"reflection_text", "return_to_monument_button_text"},
		Parents: []string{"experience-create", "collage", "timeline"},
	},
}

// Lookup returns the declaration of a page type.
func Lookup(name string) (PageType, bool) {
	pt, ok := Registry[name]
	return pt, ok
}

// AllowsParent reports whether a page of this type may be placed below parentType.
func (pt PageType) AllowsParent(parentType string) bool {
	for _, p := range pt.Parents {
		if p == parentType {
			return true
		}
	}
	return false
}

// IsImageField reports whether field holds an image id.
func (pt PageType) IsImageField(field string) bool {
	for _, f := range pt.ImageFields {
		if f == field {
			return true
		}
	}
	return false
}

// ImageReferences extracts the image ids set in content, keyed by field.
func (pt PageType) ImageReferences(content map[string]any) map[string]uint64 {
	refs := make(map[string]uint64)
	for _, field := range pt.ImageFields {
		if id, ok := ImageID(content[field]); ok {
			refs[field] = id
		}
	}
	return refs
}

// ImageID converts a decoded JSON value to an image id. Unset and
// non positive values report false.
func ImageID(v any) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		if n >= 1 && n == float64(uint64(n)) {
			return uint64(n), true
		}
	case json.Number:
		if id, err := strconv.ParseUint(n.String(), 10, 64); err == nil && id > 0 {
			return id, true
		}
	case string:
		if id, err := strconv.ParseUint(n, 10, 64); err == nil && id > 0 {
			return id, true
		}
	case int:
		if n > 0 {
			return uint64(n), true
		}
	case uint64:
		if n > 0 {
			return n, true
		}
	}
	return 0, false
}
