// Package data embeds the sample site used by "sitedata seed" and the site
// data tests.
package data

import (
	_ "embed"
)

// SampleSite is a small site data document: one language tree, a character
// with its approved and not approved collections and an editors group.
//
//go:embed sample_site.json
var SampleSite []byte
