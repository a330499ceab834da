package imageauth

import (
	"context"
	"fmt"

	"github.com/artcom/cheminova-backend/internal/models"
)

// ImageStore looks up images by storage path. Both methods return a nil image
// and a nil error when no record matches. The returned image has its
// Collection loaded.
type ImageStore interface {
	ImageByFile(ctx context.Context, file string) (*models.Image, error)
	ImageByRenditionFile(ctx context.Context, file string) (*models.Image, error)
}

// Resolver maps a classified path to the original image that governs access.
type Resolver struct {
	Images ImageStore
}

// Resolve returns the original image for the path. For renditions this is the
// image the rendition was derived from.
func (r *Resolver) Resolve(ctx context.Context, kind Kind, file string) (*models.Image, error) {
	var (
		img *models.Image
		err error
	)

	switch kind {
	case KindRendition:
		img, err = r.Images.ImageByRenditionFile(ctx, file)
	case KindOriginal:
		img, err = r.Images.ImageByFile(ctx, file)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrBadRequest, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("resolve %s %q: %w", kind, file, err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, kind, file)
	}

	return img, nil
}
