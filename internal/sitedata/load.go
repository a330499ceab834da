package sitedata

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/artcom/cheminova-backend/internal/logging"
	"github.com/artcom/cheminova-backend/internal/models"
	"github.com/artcom/cheminova-backend/internal/services"
	"github.com/artcom/cheminova-backend/internal/types"
	"gorm.io/gorm"
)

// ErrNotEmpty is returned when loading into a database that already holds content
var ErrNotEmpty = errors.New("database already holds site content")

// sequenceTables have auto increment ids that loading sets explicitly
var sequenceTables = []string{
	"collections", "images", "renditions", "user_groups", "group_collection_permissions",
	"locales", "pages", "page_image_references", "characters",
}

// Load writes doc into an empty database in one transaction, keeping record ids.
// Pages go through services.SavePage so their placement is validated and the
// image reference index is rebuilt.
func Load(ctx context.Context, db *gorm.DB, doc *Document) error {
	if doc.Version > FormatVersion {
		return fmt.Errorf("unsupported site data version %d", doc.Version)
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Collection{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrNotEmpty
		}

		steps := []struct {
			name string
			fn   func(*gorm.DB, *Document) error
		}{
			{"collections", loadCollections},
			{"images", loadImages},
			{"groups", loadGroups},
			{"locales", loadLocales},
			{"pages", loadPages},
			{"characters", loadCharacters},
		}
		for _, step := range steps {
			if err := step.fn(tx, doc); err != nil {
				return fmt.Errorf("failed to load %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		return resetSequences(ctx, db)
	}
	return nil
}

// loadCollections saves parents before children. Records without a path are
// placed after their pathed siblings.
func loadCollections(tx *gorm.DB, doc *Document) error {
	order, err := treeOrder(doc.Collections.Slice(), func(r CollectionRecord) treeKey {
		return treeKey{r.ID.Uint64(), types.OptionalID(r.ParentID), r.Path, r.Name}
	})
	if err != nil {
		return err
	}

	for _, r := range order {
		coll := models.Collection{
			ID:       r.ID.Uint64(),
			Name:     r.Name,
			Path:     r.Path,
			ParentID: types.OptionalID(r.ParentID),
		}
		if err := services.SaveCollection(tx, &coll); err != nil {
			return fmt.Errorf("collection %q: %w", r.Name, err)
		}
	}
	return nil
}

func loadImages(tx *gorm.DB, doc *Document) error {
	for _, r := range doc.Images.Slice() {
		img := models.Image{
			ID:           r.ID.Uint64(),
			Title:        r.Title,
			File:         r.File,
			Width:        r.Width,
			Height:       r.Height,
			APIUpload:    r.APIUpload,
			CollectionID: r.CollectionID.Uint64(),
		}
		if err := tx.Omit("Collection").Create(&img).Error; err != nil {
			return fmt.Errorf("image %q: %w", r.File, err)
		}
	}
	for _, r := range doc.Renditions.Slice() {
		rendition := models.Rendition{
			ID:         r.ID.Uint64(),
			ImageID:    r.ImageID.Uint64(),
			FilterSpec: r.FilterSpec,
			File:       r.File,
			Width:      r.Width,
			Height:     r.Height,
		}
		if err := tx.Omit("Image").Create(&rendition).Error; err != nil {
			return fmt.Errorf("rendition %q: %w", r.File, err)
		}
	}
	return nil
}

func loadGroups(tx *gorm.DB, doc *Document) error {
	for _, r := range doc.Groups.Slice() {
		group := models.Group{ID: r.ID.Uint64(), Name: r.Name}
		for _, userID := range r.Members.Slice() {
			group.Members = append(group.Members, models.GroupMember{UserID: userID})
		}
		if err := tx.Create(&group).Error; err != nil {
			return fmt.Errorf("group %q: %w", r.Name, err)
		}
	}
	for _, r := range doc.Grants.Slice() {
		grant := models.GroupCollectionPermission{
			GroupID:      r.GroupID.Uint64(),
			CollectionID: r.CollectionID.Uint64(),
			Permission:   r.Permission,
		}
		if err := tx.Omit("Collection").Create(&grant).Error; err != nil {
			return fmt.Errorf("grant %s on collection %d: %w", r.Permission, grant.CollectionID, err)
		}
	}
	return nil
}

func loadLocales(tx *gorm.DB, doc *Document) error {
	for _, r := range doc.Locales.Slice() {
		locale := models.Locale{ID: r.ID.Uint64(), LanguageCode: r.LanguageCode}
		if err := tx.Create(&locale).Error; err != nil {
			return fmt.Errorf("locale %q: %w", r.LanguageCode, err)
		}
	}
	return nil
}

// loadPages saves parents before children. Records without a path are placed
// after their pathed siblings in document order. Saving a page with an unknown
// id inserts it.
func loadPages(tx *gorm.DB, doc *Document) error {
	order, err := treeOrder(doc.Pages.Slice(), func(r PageRecord) treeKey {
		return treeKey{r.ID.Uint64(), types.OptionalID(r.ParentID), r.Path, r.Slug}
	})
	if err != nil {
		return err
	}

	for _, r := range order {
		content, err := models.NewJSON(r.Content)
		if err != nil {
			return fmt.Errorf("page %q content: %w", r.Slug, err)
		}
		page := models.Page{
			ID:       r.ID.Uint64(),
			ParentID: types.OptionalID(r.ParentID),
			Path:     r.Path,
			Type:     r.Type,
			Title:    r.Title,
			Slug:     r.Slug,
			LocaleID: types.OptionalID(r.LocaleID),
			Live:     r.Live,
			Content:  content,
		}
		if err := services.SavePage(tx, &page); err != nil {
			return fmt.Errorf("page %q: %w", r.Slug, err)
		}
	}
	return nil
}

func loadCharacters(tx *gorm.DB, doc *Document) error {
	for _, r := range doc.Characters.Slice() {
		ch := models.Character{
			ID:                      r.ID.Uint64(),
			PageID:                  r.PageID.Uint64(),
			SortOrder:               r.SortOrder,
			Name:                    r.Name,
			Slug:                    r.Slug,
			ApprovedCollectionID:    types.OptionalID(r.ApprovedCollectionID),
			NotApprovedCollectionID: types.OptionalID(r.NotApprovedCollectionID),
		}
		if err := tx.Omit("ApprovedCollection", "NotApprovedCollection").Create(&ch).Error; err != nil {
			return fmt.Errorf("character %q: %w", r.Slug, err)
		}
	}
	return nil
}

type treeKey struct {
	id     uint64
	parent *uint64
	path   string
	name   string
}

// treeOrder sorts records so every parent precedes its children. Records with
// a path are visited first in path order, the rest keep document order.
func treeOrder[T any](records []T, key func(T) treeKey) ([]T, error) {
	keys := make([]treeKey, len(records))
	byID := make(map[uint64]int, len(records))
	visitOrder := make([]int, 0, len(records))
	for i, r := range records {
		keys[i] = key(r)
		if keys[i].id != 0 {
			byID[keys[i].id] = i
		}
		visitOrder = append(visitOrder, i)
	}
	sort.SliceStable(visitOrder, func(a, b int) bool {
		pa, pb := keys[visitOrder[a]].path, keys[visitOrder[b]].path
		if pa == "" || pb == "" {
			return pa != "" && pb == ""
		}
		return pa < pb
	})

	order := make([]T, 0, len(records))
	state := make([]int, len(records)) // 0 new, 1 visiting, 2 done
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case 1:
			return fmt.Errorf("%q is its own ancestor", keys[i].name)
		case 2:
			return nil
		}
		state[i] = 1
		if parent := keys[i].parent; parent != nil {
			if j, ok := byID[*parent]; ok {
				if err := visit(j); err != nil {
					return err
				}
			}
		}
		state[i] = 2
		order = append(order, records[i])
		return nil
	}

	for _, i := range visitOrder {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// resetSequences moves the postgres id sequences past the loaded ids
func resetSequences(ctx context.Context, db *gorm.DB) error {
	for _, table := range sequenceTables {
		sql := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
			table,
		)
		if err := db.WithContext(ctx).Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to reset sequence of %s: %w", table, err)
		}
	}
	logging.Debug().Int("tables", len(sequenceTables)).Msg("Reset id sequences")
	return nil
}
