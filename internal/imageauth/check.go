package imageauth

import (
	"context"
	"fmt"

	"github.com/artcom/cheminova-backend/internal/models"
)

// Decision describes a completed check.
type Decision struct {
	Kind    Kind
	File    string
	Image   *models.Image
	Verdict Verdict
}

// Checker runs the full check for one request. It holds no per request state
// and is safe for concurrent use.
type Checker struct {
	MediaURL  string
	Resolver  *Resolver
	Evaluator *Evaluator
}

// NewChecker wires a checker over the given stores.
func NewChecker(mediaURL string, images ImageStore, policy PolicyStore) *Checker {
	return &Checker{
		MediaURL:  mediaURL,
		Resolver:  &Resolver{Images: images},
		Evaluator: &Evaluator{Store: policy},
	}
}

// Check classifies uri, resolves it and evaluates the policy for p. A denied
// check returns the decision together with ErrUnauthorized.
func (c *Checker) Check(ctx context.Context, uri string, p Principal) (Decision, error) {
	kind, file, err := Classify(c.MediaURL, uri)
	if err != nil {
		return Decision{}, err
	}
	d := Decision{Kind: kind, File: file}

	img, err := c.Resolver.Resolve(ctx, kind, file)
	if err != nil {
		return d, err
	}
	d.Image = img

	verdict, err := c.Evaluator.Evaluate(ctx, img, p)
	if err != nil {
		return d, err
	}
	d.Verdict = verdict

	if verdict != Allow {
		return d, fmt.Errorf("%w: %s %q", ErrUnauthorized, kind, file)
	}
	return d, nil
}
