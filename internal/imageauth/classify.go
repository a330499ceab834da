// Package imageauth decides whether a caller may fetch a media file. It backs
// the reverse proxy auth subrequest: the proxy forwards the original media URI
// and only serves the file on a 200.
//
// A check runs Classify, then Resolver.Resolve, then Evaluator.Evaluate. Every
// rendition is judged through the original image it was derived from.
package imageauth

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy of a check. Anything else is an internal error.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Kind tells originals and renditions apart.
type Kind string

const (
	KindOriginal  Kind = "original"
	KindRendition Kind = "rendition"
)

const (
	renditionPrefix = "images/"
	originalPrefix  = "original_images/"
)

// Classify strips mediaURL from the requested uri and classifies the remaining
// storage relative path by its leading directory.
func Classify(mediaURL, uri string) (Kind, string, error) {
	if uri == "" {
		return "", "", fmt.Errorf("%w: missing original uri", ErrBadRequest)
	}

	file := strings.TrimPrefix(uri, mediaURL)

	switch {
	case strings.HasPrefix(file, renditionPrefix):
		return KindRendition, file, nil
	case strings.HasPrefix(file, originalPrefix):
		return KindOriginal, file, nil
	default:
		return "", "", fmt.Errorf("%w: unrecognized file type %q", ErrBadRequest, file)
	}
}
