package sitedata_test

import (
	"context"
	"errors"
	"testing"

	"github.com/artcom/cheminova-backend/internal/imageauth"
	"github.com/artcom/cheminova-backend/internal/models"
	"github.com/artcom/cheminova-backend/internal/services"
	"github.com/artcom/cheminova-backend/internal/sitedata"
	"github.com/artcom/cheminova-backend/internal/testutil"
	"github.com/artcom/cheminova-backend/internal/types"
)

func parentID(v uint64) *types.FlexUint64 {
	id := types.FlexUint64(v)
	return &id
}

func TestLoadRejectsCollectionOutsideParent(t *testing.T) {
	tests := []struct {
		name        string
		collections []sitedata.CollectionRecord
	}{
		{"sibling path below deeper parent", []sitedata.CollectionRecord{
			{ID: 1, Name: "Root", Path: "0001"},
			{ID: 2, Name: "Editors", Path: "00010001", ParentID: parentID(1)},
			{ID: 3, Name: "Stray", Path: "0002", ParentID: parentID(2)},
		}},
		{"nested path without parent", []sitedata.CollectionRecord{
			{ID: 1, Name: "Root", Path: "0001"},
			{ID: 2, Name: "Loose", Path: "00010001"},
		}},
		{"malformed path", []sitedata.CollectionRecord{
			{ID: 1, Name: "Root", Path: "001"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.NewDB(t)
			doc := &sitedata.Document{Version: sitedata.FormatVersion, Collections: tt.collections}

			err := sitedata.Load(context.Background(), db, doc)
			if !errors.Is(err, services.ErrInvalidCollection) {
				t.Fatalf("Expected ErrInvalidCollection, got %v", err)
			}

			var count int64
			db.Model(&models.Collection{}).Count(&count)
			if count != 0 {
				t.Errorf("Expected the transaction to roll back, found %d collections", count)
			}
		})
	}
}

func TestLoadPlacesPathlessCollections(t *testing.T) {
	db := testutil.NewDB(t)
	doc := &sitedata.Document{
		Version: sitedata.FormatVersion,
		Collections: []sitedata.CollectionRecord{
			{ID: 5, Name: "Nested", ParentID: parentID(2)},
			{ID: 1, Name: "Root", Path: "0001"},
			{ID: 2, Name: "Editors", ParentID: parentID(1)},
			{ID: 3, Name: "Pending", ParentID: parentID(1)},
			{ID: 4, Name: "Public", Path: "00010001", ParentID: parentID(1)},
		},
		Images: []sitedata.ImageRecord{
			{ID: 1, Title: "Nested", File: "original_images/nested.jpg", Width: 800, Height: 600, CollectionID: 5},
		},
		Groups: []sitedata.GroupRecord{{ID: 1, Name: "Editors", Members: []string{testutil.EditorID}}},
		Grants: []sitedata.GrantRecord{{GroupID: 1, CollectionID: 2, Permission: "change_image"}},
	}
	if err := sitedata.Load(context.Background(), db, doc); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := map[uint64]string{
		1: "0001",
		4: "00010001",
		2: "00010002",
		3: "00010003",
		5: "000100020001",
	}
	for id, path := range want {
		var coll models.Collection
		if err := db.First(&coll, id).Error; err != nil {
			t.Fatalf("Failed to load collection %d: %v", id, err)
		}
		if coll.Path != path || coll.Depth != len(path)/models.PathStepLength {
			t.Errorf("Collection %d: expected %q, got %q depth %d", id, path, coll.Path, coll.Depth)
		}
	}

	repo := services.NewRepository(db)
	checker := imageauth.NewChecker("/media/", repo, repo)
	if _, err := checker.Check(context.Background(), "/media/original_images/nested.jpg", imageauth.Authenticated(testutil.EditorID)); err != nil {
		t.Errorf("Expected the grant on the parent collection to cover the nested image, got %v", err)
	}
}
