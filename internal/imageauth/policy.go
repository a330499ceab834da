package imageauth

import (
	"context"
	"fmt"

	"github.com/artcom/cheminova-backend/internal/models"
)

// ManagePermissions are the collection permissions that let an editor see an image.
var ManagePermissions = []string{
	models.PermissionChangeImage,
	models.PermissionAddImage,
	models.PermissionDeleteImage,
	models.PermissionChooseImage,
}

// Principal is the caller of a check. The zero value is anonymous.
type Principal struct {
	UserID string
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return Principal{}
}

// Authenticated returns the principal of a signed in user.
func Authenticated(userID string) Principal {
	return Principal{UserID: userID}
}

// IsAuthenticated reports whether the principal is a signed in user.
func (p Principal) IsAuthenticated() bool {
	return p.UserID != ""
}

// Verdict is the outcome of a policy evaluation.
type Verdict int

const (
	Deny Verdict = iota
	Allow
)

func (v Verdict) String() string {
	if v == Allow {
		return "allow"
	}
	return "deny"
}

// PolicyStore answers the questions the policy asks about an image and a user.
type PolicyStore interface {
	// GrantedCollectionPaths returns the tree paths of the collections on which
	// the user holds any of the permissions through a group.
	GrantedCollectionPaths(ctx context.Context, userID string, permissions []string) ([]string, error)

	// HasLiveReference reports whether a live page uses the image.
	HasLiveReference(ctx context.Context, imageID uint64) (bool, error)

	// IsApprovedCollection reports whether the collection is some character's approved collection.
	IsApprovedCollection(ctx context.Context, collectionID uint64) (bool, error)
}

// Evaluator applies the access policy to a resolved image.
//
// Signed in users are judged only by collection permissions: a grant on a
// collection covers its whole subtree. Staff or superuser status is not
// consulted and being signed in grants nothing on its own.
// Anonymous callers see images used by a live page or stored in a character's
// approved collection.
type Evaluator struct {
	Store PolicyStore
}

// Evaluate returns Allow or Deny for the principal. Errors are store failures.
func (e *Evaluator) Evaluate(ctx context.Context, img *models.Image, p Principal) (Verdict, error) {
	if p.IsAuthenticated() {
		return e.evaluateUser(ctx, img, p.UserID)
	}
	return e.evaluateAnonymous(ctx, img)
}

func (e *Evaluator) evaluateUser(ctx context.Context, img *models.Image, userID string) (Verdict, error) {
	paths, err := e.Store.GrantedCollectionPaths(ctx, userID, ManagePermissions)
	if err != nil {
		return Deny, fmt.Errorf("collection grants for user %s: %w", userID, err)
	}

	for _, granted := range paths {
		if models.PathContains(granted, img.Collection.Path) {
			return Allow, nil
		}
	}

	return Deny, nil
}

func (e *Evaluator) evaluateAnonymous(ctx context.Context, img *models.Image) (Verdict, error) {
	live, err := e.Store.HasLiveReference(ctx, img.ID)
	if err != nil {
		return Deny, fmt.Errorf("live references of image %d: %w", img.ID, err)
	}
	if live {
		return Allow, nil
	}

	approved, err := e.Store.IsApprovedCollection(ctx, img.CollectionID)
	if err != nil {
		return Deny, fmt.Errorf("approved collection %d: %w", img.CollectionID, err)
	}
	if approved {
		return Allow, nil
	}

	return Deny, nil
}
