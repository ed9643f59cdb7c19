package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nextprime-backend/models"
)

func TestFinalizeCreateMediaFallsBackToPlaceholder(t *testing.T) {
	hero, photos := finalizeCreateMedia("", nil, nil)
	assert.Equal(t, models.PlaceholderImage, hero)
	assert.Equal(t, []string{models.PlaceholderImage}, photos)
}

func TestFinalizeCreateMediaHeroLeadsGallery(t *testing.T) {
	hero, photos := finalizeCreateMedia("hero.jpg",
		[]string{"a.jpg"},
		[]string{"b.jpg", "hero.jpg"},
	)
	assert.Equal(t, "hero.jpg", hero)
	assert.Equal(t, []string{"hero.jpg", "a.jpg", "b.jpg"}, photos)
}

func TestFinalizeCreateMediaPlaceholderWithGallery(t *testing.T) {
	// URLs without a hero still get the placeholder in front
	hero, photos := finalizeCreateMedia("", nil, []string{"a.jpg"})
	assert.Equal(t, models.PlaceholderImage, hero)
	assert.Equal(t, []string{models.PlaceholderImage, "a.jpg"}, photos)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "SA", Initials("Sarah Al Maktoum"))
	assert.Equal(t, "J", Initials("James"))
	assert.Equal(t, "", Initials("  "))
}
