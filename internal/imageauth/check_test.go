package imageauth

import (
	"context"
	"errors"
	"testing"

	"github.com/artcom/cheminova-backend/internal/models"
)

// Collection tree used below:
//
//	0001          root
//	00010001      public (editor grant)
//	000100010001  public/sub
//	00010002      approved
//	00010003      not approved
func newFixture() (*fakeImages, *fakePolicy) {
	published := image(1, 2, "00010001")
	draft := image(2, 2, "00010001")
	approved := image(3, 3, "00010002")
	notApproved := image(4, 4, "00010003")
	nested := image(5, 5, "000100010001")

	images := &fakeImages{
		originals: map[string]*models.Image{
			"original_images/published.png":    published,
			"original_images/draft.png":        draft,
			"original_images/approved.png":     approved,
			"original_images/not-approved.png": notApproved,
			"original_images/nested.png":       nested,
		},
		renditions: map[string]*models.Image{
			"images/published.width-400.png":    published,
			"images/draft.width-400.png":        draft,
			"images/approved.width-400.png":     approved,
			"images/not-approved.width-400.png": notApproved,
		},
	}

	policy := &fakePolicy{
		grants: map[string][]string{
			"editor": {"00010001"},
			"admin":  {"0001"},
		},
		live:     map[uint64]bool{1: true},
		approved: map[uint64]bool{3: true},
	}

	return images, policy
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		principal Principal
		err       error
	}{
		{"anonymous live original", "/media/original_images/published.png", Anonymous(), nil},
		{"anonymous live rendition", "/media/images/published.width-400.png", Anonymous(), nil},
		{"anonymous draft original", "/media/original_images/draft.png", Anonymous(), ErrUnauthorized},
		{"anonymous draft rendition", "/media/images/draft.width-400.png", Anonymous(), ErrUnauthorized},
		{"anonymous approved", "/media/original_images/approved.png", Anonymous(), nil},
		{"anonymous approved rendition", "/media/images/approved.width-400.png", Anonymous(), nil},
		{"anonymous not approved", "/media/original_images/not-approved.png", Anonymous(), ErrUnauthorized},
		{"anonymous not approved rendition", "/media/images/not-approved.width-400.png", Anonymous(), ErrUnauthorized},
		{"editor granted collection", "/media/original_images/draft.png", Authenticated("editor"), nil},
		{"editor granted rendition", "/media/images/draft.width-400.png", Authenticated("editor"), nil},
		{"editor descendant collection", "/media/original_images/nested.png", Authenticated("editor"), nil},
		{"editor unrelated collection", "/media/original_images/not-approved.png", Authenticated("editor"), ErrUnauthorized},
		{"editor approved but ungranted", "/media/original_images/approved.png", Authenticated("editor"), ErrUnauthorized},
		{"user without grants on live image", "/media/original_images/published.png", Authenticated("visitor"), ErrUnauthorized},
		{"root grant covers everything", "/media/original_images/not-approved.png", Authenticated("admin"), nil},
		{"missing original", "/media/original_images/missing.jpg", Anonymous(), ErrNotFound},
		{"missing rendition as editor", "/media/images/missing.width-400.jpg", Authenticated("editor"), ErrNotFound},
		{"unknown prefix", "/media/invalid/foo.jpg", Anonymous(), ErrBadRequest},
		{"missing header", "", Authenticated("editor"), ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images, policy := newFixture()
			checker := NewChecker("/media/", images, policy)

			d, err := checker.Check(context.Background(), tt.uri, tt.principal)
			if tt.err == nil {
				if err != nil {
					t.Fatalf("Expected allow, got %v", err)
				}
				if d.Verdict != Allow {
					t.Errorf("Expected allow verdict, got %s", d.Verdict)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestCheckRenditionMatchesOriginal(t *testing.T) {
	pairs := [][2]string{
		{"original_images/published.png", "images/published.width-400.png"},
		{"original_images/draft.png", "images/draft.width-400.png"},
		{"original_images/approved.png", "images/approved.width-400.png"},
		{"original_images/not-approved.png", "images/not-approved.width-400.png"},
	}
	principals := []Principal{Anonymous(), Authenticated("editor"), Authenticated("visitor")}

	for _, p := range principals {
		for _, pair := range pairs {
			images, policy := newFixture()
			checker := NewChecker("/media/", images, policy)

			_, errOriginal := checker.Check(context.Background(), "/media/"+pair[0], p)
			_, errRendition := checker.Check(context.Background(), "/media/"+pair[1], p)
			if errors.Is(errOriginal, ErrUnauthorized) != errors.Is(errRendition, ErrUnauthorized) {
				t.Errorf("%q: rendition %s decided differently from original (%v vs %v)", p.UserID, pair[1], errRendition, errOriginal)
			}
		}
	}
}

func TestCheckQueryBudget(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		principal Principal
		maxCalls  int
	}{
		{"anonymous live", "/media/original_images/published.png", Anonymous(), 2},
		{"anonymous denied", "/media/original_images/not-approved.png", Anonymous(), 3},
		{"editor", "/media/images/draft.width-400.png", Authenticated("editor"), 2},
		{"bad request", "/media/nope/x.png", Anonymous(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images, policy := newFixture()
			checker := NewChecker("/media/", images, policy)
			_, _ = checker.Check(context.Background(), tt.uri, tt.principal)

			if calls := images.calls + policy.calls; calls > tt.maxCalls {
				t.Errorf("Expected at most %d store calls, got %d", tt.maxCalls, calls)
			}
		})
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	images, policy := newFixture()
	checker := NewChecker("/media/", images, policy)

	for _, uri := range []string{"/media/original_images/draft.png", "/media/original_images/approved.png"} {
		_, first := checker.Check(context.Background(), uri, Anonymous())
		_, second := checker.Check(context.Background(), uri, Anonymous())
		if errors.Is(first, ErrUnauthorized) != errors.Is(second, ErrUnauthorized) {
			t.Errorf("Repeated check of %s changed outcome: %v then %v", uri, first, second)
		}
	}
}

func TestCheckStoreErrors(t *testing.T) {
	t.Run("image store", func(t *testing.T) {
		images, policy := newFixture()
		images.err = errStore
		_, err := NewChecker("/media/", images, policy).Check(context.Background(), "/media/original_images/published.png", Anonymous())
		if !errors.Is(err, errStore) {
			t.Fatalf("Expected store error, got %v", err)
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrBadRequest) || errors.Is(err, ErrUnauthorized) {
			t.Errorf("Store failure must not look like a policy outcome: %v", err)
		}
	})

	t.Run("policy store", func(t *testing.T) {
		images, policy := newFixture()
		policy.err = errStore
		d, err := NewChecker("/media/", images, policy).Check(context.Background(), "/media/original_images/published.png", Authenticated("editor"))
		if !errors.Is(err, errStore) {
			t.Fatalf("Expected store error, got %v", err)
		}
		if d.Verdict == Allow {
			t.Error("Expected no allow verdict on store failure")
		}
	})
}
