package sitedata

import (
	"context"
	"fmt"

	"github.com/artcom/cheminova-backend/internal/models"
	"github.com/artcom/cheminova-backend/internal/types"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Dump reads the whole site. Tables are read concurrently.
func Dump(ctx context.Context, db *gorm.DB) (*Document, error) {
	var (
		collections []models.Collection
		images      []models.Image
		renditions  []models.Rendition
		groups      []models.Group
		grants      []models.GroupCollectionPermission
		locales     []models.Locale
		pageList    []models.Page
		characters  []models.Character
	)

	g, ctx := errgroup.WithContext(ctx)
	read := func(dest any, order string, preload ...string) {
		g.Go(func() error {
			q := db.WithContext(ctx).Order(order)
			for _, p := range preload {
				q = q.Preload(p)
			}
			if err := q.Find(dest).Error; err != nil {
				return fmt.Errorf("failed to read %T: %w", dest, err)
			}
			return nil
		})
	}

	read(&collections, "path")
	read(&images, "id")
	read(&renditions, "id")
	read(&groups, "id", "Members")
	read(&grants, "id")
	read(&locales, "id")
	read(&pageList, "path")
	read(&characters, "page_id, sort_order")

	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &Document{Version: FormatVersion}
	for _, c := range collections {
		doc.Collections = append(doc.Collections, CollectionRecord{
			ID: types.FlexUint64(c.ID), Name: c.Name, Path: c.Path, Depth: c.Depth, ParentID: types.FlexID(c.ParentID),
		})
	}
	for _, img := range images {
		doc.Images = append(doc.Images, ImageRecord{
			ID: types.FlexUint64(img.ID), Title: img.Title, File: img.File, Width: img.Width, Height: img.Height,
			APIUpload: img.APIUpload, CollectionID: types.FlexUint64(img.CollectionID),
		})
	}
	for _, r := range renditions {
		doc.Renditions = append(doc.Renditions, RenditionRecord{
			ID: types.FlexUint64(r.ID), ImageID: types.FlexUint64(r.ImageID), FilterSpec: r.FilterSpec,
			File: r.File, Width: r.Width, Height: r.Height,
		})
	}
	for _, grp := range groups {
		rec := GroupRecord{ID: types.FlexUint64(grp.ID), Name: grp.Name, Members: types.FlexList[string]{}}
		for _, m := range grp.Members {
			rec.Members = append(rec.Members, m.UserID)
		}
		doc.Groups = append(doc.Groups, rec)
	}
	for _, gr := range grants {
		doc.Grants = append(doc.Grants, GrantRecord{
			GroupID: types.FlexUint64(gr.GroupID), CollectionID: types.FlexUint64(gr.CollectionID), Permission: gr.Permission,
		})
	}
	for _, l := range locales {
		doc.Locales = append(doc.Locales, LocaleRecord{ID: types.FlexUint64(l.ID), LanguageCode: l.LanguageCode})
	}
	for _, p := range pageList {
		content, err := p.Content.Fields()
		if err != nil {
			return nil, fmt.Errorf("page %d content: %w", p.ID, err)
		}
		doc.Pages = append(doc.Pages, PageRecord{
			ID: types.FlexUint64(p.ID), ParentID: types.FlexID(p.ParentID), Path: p.Path, Type: p.Type,
			Title: p.Title, Slug: p.Slug, LocaleID: types.FlexID(p.LocaleID), Live: p.Live, Content: content,
		})
	}
	for _, ch := range characters {
		doc.Characters = append(doc.Characters, CharacterRecord{
			ID: types.FlexUint64(ch.ID), PageID: types.FlexUint64(ch.PageID), SortOrder: ch.SortOrder,
			Name: ch.Name, Slug: ch.Slug,
			ApprovedCollectionID:    types.FlexID(ch.ApprovedCollectionID),
			NotApprovedCollectionID: types.FlexID(ch.NotApprovedCollectionID),
		})
	}

	return doc, nil
}
