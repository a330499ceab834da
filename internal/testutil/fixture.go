package testutil

import (
	"strings"
	"testing"

	"github.com/artcom/cheminova-backend/internal/models"
	"github.com/artcom/cheminova-backend/internal/services"
	"gorm.io/gorm"
)

const (
	// EditorID belongs to the editors group with change and add on the public collection
	EditorID = "editor"
	// VisitorID is signed in but holds no grants
	VisitorID = "visitor"

	// RenditionFilter is the filter spec of every fixture rendition
	RenditionFilter = "width-400"
)

// Fixture is the seeded image authorization scenario: three sibling collections,
// one live welcome page using the published image and a character owning the
// approved and not approved collections.
type Fixture struct {
	Root        *models.Collection
	Approved    *models.Collection
	NotApproved *models.Collection
	Public      *models.Collection

	ApprovedImage    *models.Image
	NotApprovedImage *models.Image
	PublishedImage   *models.Image
	UnpublishedImage *models.Image

	Renditions map[uint64]*models.Rendition

	Editors    *models.Group
	Locale     *models.Locale
	Welcome    *models.Page
	Characters *models.Page
	Character  *models.Character
}

// Seed fills db with the fixture
func Seed(t *testing.T, db *gorm.DB) *Fixture {
	t.Helper()
	f := &Fixture{Renditions: map[uint64]*models.Rendition{}}

	var err error
	if f.Root, err = services.AddRootCollection(db, "Root"); err != nil {
		t.Fatalf("Failed to add root collection: %v", err)
	}
	f.Approved = childCollection(t, db, f.Root, "Approved Collection")
	f.NotApproved = childCollection(t, db, f.Root, "Not Approved Collection")
	f.Public = childCollection(t, db, f.Root, "Public Collection")

	f.Editors = &models.Group{Name: "Test Editors"}
	mustCreate(t, db, f.Editors)
	mustCreate(t, db, &models.GroupMember{GroupID: f.Editors.ID, UserID: EditorID})
	for _, perm := range []string{models.PermissionChangeImage, models.PermissionAddImage} {
		mustCreate(t, db, &models.GroupCollectionPermission{
			GroupID:      f.Editors.ID,
			CollectionID: f.Public.ID,
			Permission:   perm,
		})
	}

	f.ApprovedImage = f.addImage(t, db, "Test Image Approved", "test-approved.png", f.Approved)
	f.NotApprovedImage = f.addImage(t, db, "Test Image Not Approved", "test-not-approved.png", f.NotApproved)
	f.PublishedImage = f.addImage(t, db, "Test Image", "test.png", f.Public)
	f.UnpublishedImage = f.addImage(t, db, "Test Image Not Live", "test-not-live.png", f.Public)

	f.Locale = &models.Locale{LanguageCode: "en"}
	mustCreate(t, db, f.Locale)

	f.Characters = &models.Page{Type: "characters", Title: "Test Characters", Slug: "characters", LocaleID: &f.Locale.ID}
	if err := services.SavePage(db, f.Characters); err != nil {
		t.Fatalf("Failed to save characters page: %v", err)
	}
	f.Character = &models.Character{
		PageID:                  f.Characters.ID,
		Name:                    "Test Character",
		Slug:                    "test-character",
		ApprovedCollectionID:    &f.Approved.ID,
		NotApprovedCollectionID: &f.NotApproved.ID,
	}
	mustCreate(t, db, f.Character)

	content, err := models.NewJSON(map[string]any{
		"site_name":        "Cheminova",
		"background_image": f.PublishedImage.ID,
	})
	if err != nil {
		t.Fatalf("Failed to build welcome content: %v", err)
	}
	f.Welcome = &models.Page{
		Type:     "welcome",
		Title:    "Welcome",
		Slug:     "welcome",
		LocaleID: &f.Locale.ID,
		Live:     true,
		Content:  content,
	}
	if err := services.SavePage(db, f.Welcome); err != nil {
		t.Fatalf("Failed to save welcome page: %v", err)
	}

	return f
}

// RenditionOf returns the fixture rendition of img
func (f *Fixture) RenditionOf(img *models.Image) *models.Rendition {
	return f.Renditions[img.ID]
}

func (f *Fixture) addImage(t *testing.T, db *gorm.DB, title, name string, coll *models.Collection) *models.Image {
	t.Helper()
	img := &models.Image{
		Title:        title,
		File:         "original_images/" + name,
		Width:        640,
		Height:       480,
		CollectionID: coll.ID,
	}
	mustCreate(t, db, img)
	img.Collection = *coll

	base, ext, _ := strings.Cut(name, ".")
	rendition := &models.Rendition{
		ImageID:    img.ID,
		FilterSpec: RenditionFilter,
		File:       "images/" + base + "." + RenditionFilter + "." + ext,
		Width:      400,
		Height:     300,
	}
	mustCreate(t, db, rendition)
	f.Renditions[img.ID] = rendition

	return img
}

func childCollection(t *testing.T, db *gorm.DB, parent *models.Collection, name string) *models.Collection {
	t.Helper()
	coll, err := services.AddChildCollection(db, parent, name)
	if err != nil {
		t.Fatalf("Failed to add collection %q: %v", name, err)
	}
	return coll
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("Failed to create %T: %v", value, err)
	}
}
