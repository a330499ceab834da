package imageauth

import (
	"context"
	"errors"

	"github.com/artcom/cheminova-backend/internal/models"
)

var errStore = errors.New("store unavailable")

type fakeImages struct {
	originals  map[string]*models.Image
	renditions map[string]*models.Image
	err        error
	calls      int
}

func (f *fakeImages) ImageByFile(_ context.Context, file string) (*models.Image, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.originals[file], nil
}

func (f *fakeImages) ImageByRenditionFile(_ context.Context, file string) (*models.Image, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.renditions[file], nil
}

type fakePolicy struct {
	grants   map[string][]string
	live     map[uint64]bool
	approved map[uint64]bool
	err      error
	calls    int
}

func (f *fakePolicy) GrantedCollectionPaths(_ context.Context, userID string, _ []string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.grants[userID], nil
}

func (f *fakePolicy) HasLiveReference(_ context.Context, imageID uint64) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.live[imageID], nil
}

func (f *fakePolicy) IsApprovedCollection(_ context.Context, collectionID uint64) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.approved[collectionID], nil
}

func image(id, collectionID uint64, path string) *models.Image {
	return &models.Image{
		ID:           id,
		CollectionID: collectionID,
		Collection:   models.Collection{ID: collectionID, Path: path},
	}
}
