package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	destroyed []string
}

func (f *fakeProvider) Upload(context.Context, io.Reader, string, string) (string, string, error) {
	return "", "", nil
}

func (f *fakeProvider) Destroy(_ context.Context, publicID, resourceType string) error {
	f.destroyed = append(f.destroyed, fmt.Sprintf("%s|%s", publicID, resourceType))
	return nil
}

func cdnURL(kind, publicID string) string {
	return fmt.Sprintf("https://res.cloudinary.com/demo/%s/upload/v1712345/%s.jpg", kind, publicID)
}

func TestResourceTypeForMime(t *testing.T) {
	assert.Equal(t, ResourceTypeImage, ResourceTypeForMime("image/jpeg"))
	assert.Equal(t, ResourceTypeImage, ResourceTypeForMime("text/plain"))
	assert.Equal(t, ResourceTypeVideo, ResourceTypeForMime("video/mp4"))
	assert.Equal(t, ResourceTypeRaw, ResourceTypeForMime("application/pdf"))
	assert.Equal(t, ResourceTypeRaw, ResourceTypeForMime("application/zip"))
}

func TestCloudinaryURLParsing(t *testing.T) {
	url := cdnURL("image", "nextprime/villa-hero")
	assert.True(t, IsCloudinaryURL(url))
	assert.Equal(t, "nextprime/villa-hero", CloudinaryPublicID(url))
	assert.Equal(t, ResourceTypeImage, CloudinaryResourceType(url))

	raw := "https://res.cloudinary.com/demo/raw/upload/nextprime/brochure.pdf"
	assert.Equal(t, "nextprime/brochure", CloudinaryPublicID(raw))
	assert.Equal(t, ResourceTypeRaw, CloudinaryResourceType(raw))

	assert.False(t, IsCloudinaryURL("/logo-icon.PNG"))
	assert.Empty(t, CloudinaryPublicID("https://example.com/a.jpg"))
	assert.Equal(t, ResourceTypeImage, CloudinaryResourceType("https://example.com/a.jpg"))
}

func TestCleanupRemovedDeletesOnlyOrphans(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewMediaService(provider, t.TempDir(), "http://localhost:8080")

	a := cdnURL("image", "nextprime/a")
	b := cdnURL("image", "nextprime/b")
	cc := cdnURL("video", "nextprime/c")
	d := cdnURL("image", "nextprime/d")

	svc.CleanupRemoved(context.Background(), []string{a, b, cc}, []string{a, cc, d})
	assert.Equal(t, []string{"nextprime/b|image"}, provider.destroyed)
}

func TestCleanupRemovedFullWipe(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewMediaService(provider, t.TempDir(), "http://localhost:8080")

	hero := cdnURL("image", "nextprime/hero")
	clip := cdnURL("video", "nextprime/tour")

	// duplicates in the old set are deleted once
	svc.CleanupRemoved(context.Background(), []string{hero, clip, hero}, nil)
	assert.Equal(t, []string{"nextprime/hero|image", "nextprime/tour|video"}, provider.destroyed)
}

func TestCleanupRemovedIgnoresPlaceholder(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewMediaService(provider, t.TempDir(), "http://localhost:8080")

	// the placeholder is neither provider-hosted nor a local upload
	svc.CleanupRemoved(context.Background(), []string{"/logo-icon.PNG"}, nil)
	assert.Empty(t, provider.destroyed)
}

func TestDeleteLocalByURL(t *testing.T) {
	dir := t.TempDir()
	svc := NewMediaService(&fakeProvider{}, dir, "http://localhost:8080")

	docs := filepath.Join(dir, "properties")
	require.NoError(t, os.MkdirAll(docs, 0755))
	path := filepath.Join(docs, "brochure-abc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))

	svc.DeleteLocalByURL("http://localhost:8080/uploads/properties/brochure-abc.pdf")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// foreign and empty URLs are ignored
	svc.DeleteLocalByURL("https://example.com/other.pdf")
	svc.DeleteLocalByURL("")
}

func TestDeleteByURLRoutesLocal(t *testing.T) {
	dir := t.TempDir()
	provider := &fakeProvider{}
	svc := NewMediaService(provider, dir, "http://localhost:8080")

	docs := filepath.Join(dir, "properties")
	require.NoError(t, os.MkdirAll(docs, 0755))
	path := filepath.Join(docs, "floor-plan-xyz.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))

	svc.DeleteByURL(context.Background(), "http://localhost:8080/uploads/properties/floor-plan-xyz.pdf")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, provider.destroyed)
}
