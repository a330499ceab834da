package pages

import (
	"fmt"

	"github.com/artcom/cheminova-backend/internal/models"
)

// Renderer turns page nodes into API objects. Images and Characters must hold
// every image and character row the rendered pages refer to.
type Renderer struct {
	Images     map[uint64]models.Image
	Characters map[uint64][]models.Character
	ImageURL   func(file string) string
}

// Collect walks the subtrees of nodes down to depth and returns the image ids
// their content refers to and the ids of pages that expand characters.
func Collect(nodes []*Node, depth int) (imageIDs []uint64, characterPages []uint64, err error) {
	seen := map[uint64]bool{}
	for _, root := range nodes {
		Subtree(root, depth, func(n *Node, _ int) {
			pt, ok := Lookup(n.Page.Type)
			if !ok {
				return
			}
			if pt.HasCharacters {
				characterPages = append(characterPages, n.Page.ID)
			}
			content, cerr := n.Page.Content.Fields()
			if cerr != nil {
				err = fmt.Errorf("page %d content: %w", n.Page.ID, cerr)
				return
			}
			for _, id := range pt.ImageReferences(content) {
				if !seen[id] {
					seen[id] = true
					imageIDs = append(imageIDs, id)
				}
			}
		})
	}
	return imageIDs, characterPages, err
}

// Render returns the API object of n with children nested down to depth
// levels. A negative depth renders the whole subtree.
func (r *Renderer) Render(n *Node, depth int) (map[string]any, error) {
	p := n.Page
	pt, ok := Lookup(p.Type)
	if !ok {
		return nil, fmt.Errorf("page %d has unknown type %q", p.ID, p.Type)
	}

	content, err := p.Content.Fields()
	if err != nil {
		return nil, fmt.Errorf("page %d content: %w", p.ID, err)
	}

	out := map[string]any{
		"id":    p.ID,
		"type":  p.Type,
		"title": p.Title,
		"slug":  p.Slug,
	}
	if p.Locale != nil {
		out["locale"] = p.Locale.LanguageCode
	}

	for _, field := range pt.Fields {
		if pt.IsImageField(field) {
			out[field] = r.image(content[field])
			continue
		}
		out[field] = content[field]
	}

	if pt.HasCharacters {
		out["characters"] = r.characters(p.ID)
	}

	if depth != 0 {
		children := make([]map[string]any, 0, len(n.Children))
		for _, c := range n.Children {
			child, err := r.Render(c, depth-1)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		out["children"] = children
	}

	return out, nil
}

func (r *Renderer) image(v any) any {
	id, ok := ImageID(v)
	if !ok {
		return nil
	}
	img, ok := r.Images[id]
	if !ok {
		return nil
	}
	return ImageObject(img, r.ImageURL)
}

func (r *Renderer) characters(pageID uint64) []map[string]any {
	list := r.Characters[pageID]
	out := make([]map[string]any, 0, len(list))
	for _, ch := range list {
		out = append(out, map[string]any{
			"name":                    ch.Name,
			"slug":                    ch.Slug,
			"approved_collection":     ch.ApprovedCollectionID,
			"not_approved_collection": ch.NotApprovedCollectionID,
		})
	}
	return out
}

// ImageObject is the API representation of an image.
func ImageObject(img models.Image, imageURL func(string) string) map[string]any {
	obj := map[string]any{
		"id":         img.ID,
		"title":      img.Title,
		"file":       img.File,
		"width":      img.Width,
		"height":     img.Height,
		"collection": img.CollectionID,
		"created_at": img.CreatedAt,
	}
	if imageURL != nil {
		obj["url"] = imageURL(img.File)
	}
	return obj
}
