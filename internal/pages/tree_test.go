package pages

import (
	"testing"

	"github.com/artcom/cheminova-backend/internal/models"
)

func ptr(v uint64) *uint64 { return &v }

func page(t *testing.T, id uint64, parent *uint64, path, pageType string, content map[string]any) models.Page {
	t.Helper()
	c, err := models.NewJSON(content)
	if err != nil {
		t.Fatal(err)
	}
	return models.Page{ID: id, ParentID: parent, Path: path, Depth: len(path) / models.PathStepLength, Type: pageType, Title: pageType, Content: c}
}

func sampleTree(t *testing.T) *Tree {
	return NewTree([]models.Page{
		page(t, 4, ptr(2), "000100010001", "welcome", map[string]any{"background_image": 10, "site_name": "Cheminova"}),
		page(t, 1, nil, "0001", "welcome-language", nil),
		page(t, 2, ptr(1), "00010001", "welcome-intro", map[string]any{"background_image": 11}),
		page(t, 3, ptr(1), "00010002", "welcome-intro", nil),
		page(t, 5, ptr(99), "00020001", "welcome", nil),
	})
}

func TestTreeStructure(t *testing.T) {
	tree := sampleTree(t)

	roots := tree.Roots()
	if len(roots) != 2 || roots[0].Page.ID != 1 || roots[1].Page.ID != 5 {
		t.Fatalf("Unexpected roots %v", roots)
	}

	children := tree.Children(1)
	if len(children) != 2 || children[0].Page.ID != 2 || children[1].Page.ID != 3 {
		t.Errorf("Expected children in path order, got %v", children)
	}

	if got := tree.OfType("welcome", nil); len(got) != 2 {
		t.Errorf("Expected 2 welcome pages, got %d", len(got))
	}
	if _, ok := tree.Node(42); ok {
		t.Error("Expected unknown node lookup to fail")
	}
}

func TestTreeOfTypeLocale(t *testing.T) {
	en, de := uint64(1), uint64(2)
	p1 := page(t, 1, nil, "0001", "welcome", nil)
	p1.LocaleID = &en
	p2 := page(t, 2, nil, "0002", "welcome", nil)
	p2.LocaleID = &de
	tree := NewTree([]models.Page{p1, p2})

	got := tree.OfType("welcome", &de)
	if len(got) != 1 || got[0].Page.ID != 2 {
		t.Errorf("Expected only the german page, got %v", got)
	}
}

func TestCollectAndRender(t *testing.T) {
	tree := sampleTree(t)
	root, _ := tree.Node(1)

	ids, _, err := Collect([]*Node{root}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != 11 {
		t.Errorf("Expected only image 11 within depth 1, got %v", ids)
	}

	ids, _, err = Collect([]*Node{root}, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Errorf("Expected both images for the full subtree, got %v", ids)
	}

	r := &Renderer{
		Images: map[uint64]models.Image{
			10: {ID: 10, Title: "bg", File: "original_images/bg.png"},
			11: {ID: 11, Title: "intro", File: "original_images/intro.png"},
		},
		ImageURL: func(file string) string { return "http://localhost:3000/media/" + file },
	}

	out, err := r.Render(root, 1)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	children := out["children"].([]map[string]any)
	if len(children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(children))
	}
	if _, nested := children[0]["children"]; nested {
		t.Error("Expected depth to stop below the first level")
	}
	bg, ok := children[0]["background_image"].(map[string]any)
	if !ok || bg["url"] != "http://localhost:3000/media/original_images/intro.png" {
		t.Errorf("Expected expanded background image, got %v", children[0]["background_image"])
	}
	if children[1]["background_image"] != nil {
		t.Errorf("Expected unset image field to render as null, got %v", children[1]["background_image"])
	}

	flat, err := r.Render(root, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := flat["children"]; ok {
		t.Error("Expected no children at depth 0")
	}
}
