package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugStrip   = regexp.MustCompile(`[^\w-]+`)
	slugHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify turns a title into a lowercase URL-safe identifier:
// whitespace runs become single hyphens, everything outside [a-z0-9_-]
// is stripped, repeated hyphens collapse, edges are trimmed.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugStrip.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// UniqueSlug probes taken() with base, base-2, base-3, ... until it finds a
// free slug. An empty base falls back to "property". The store's unique index
// stays authoritative; callers retry on a duplicate-key insert.
func UniqueSlug(base string, taken func(slug string) (bool, error)) (string, error) {
	if base == "" {
		base = "property"
	}
	slug := base
	for n := 2; ; n++ {
		exists, err := taken(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}
