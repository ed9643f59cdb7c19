package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Marina View Villa":        "marina-view-villa",
		"  Palm   Jumeirah  ":      "palm-jumeirah",
		"Downtown — Burj Views!":   "downtown-burj-views",
		"Penthouse (5BR) @ Marina": "penthouse-5br-marina",
		"---":                      "",
		"":                         "",
		"ALL CAPS TITLE":           "all-caps-title",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "Slugify(%q)", input)
	}
}

func TestSlugifyOutputAlphabet(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9_-]*$`)
	titles := []string{
		"Marina View Villa",
		"Off-Plan: The Oasis (Phase 2)",
		"شقة في دبي", // non-latin input collapses to empty
		"Villa №7 — Jumeirah",
		"  spaced   out   title  ",
	}
	for _, title := range titles {
		slug := Slugify(title)
		assert.True(t, valid.MatchString(slug), "Slugify(%q) = %q", title, slug)
		assert.NotRegexp(t, `^-|-$|--`, slug, "Slugify(%q) = %q", title, slug)
	}
}

func TestUniqueSlugFallback(t *testing.T) {
	slug, err := UniqueSlug("", func(string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Equal(t, "property", slug)
}

func TestUniqueSlugSequence(t *testing.T) {
	taken := map[string]bool{}
	probe := func(slug string) (bool, error) { return taken[slug], nil }

	for _, want := range []string{"villa", "villa-2", "villa-3"} {
		slug, err := UniqueSlug("villa", probe)
		require.NoError(t, err)
		assert.Equal(t, want, slug)
		assert.False(t, taken[slug], "UniqueSlug returned an occupied slug")
		taken[slug] = true
	}
}

func TestUniqueSlugSkipsHoles(t *testing.T) {
	taken := map[string]bool{"villa": true, "villa-2": true, "villa-4": true}
	slug, err := UniqueSlug("villa", func(s string) (bool, error) { return taken[s], nil })
	require.NoError(t, err)
	assert.Equal(t, "villa-3", slug)
}
