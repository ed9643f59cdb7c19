package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const uploadsSubdir = "properties"

var localUploadPattern = regexp.MustCompile(`/uploads/properties/([^/?#]+)`)

// MediaService owns every media concern: Cloudinary uploads, locally stored
// PDF documents, and the cleanup of URLs a record no longer references.
type MediaService struct {
	Provider   MediaProvider
	UploadsDir string // local document storage, served under /uploads
	BaseURL    string // absolute base for locally served files
	Folder     string // provider folder for uploads
}

func NewMediaService(provider MediaProvider, uploadsDir, baseURL string) *MediaService {
	return &MediaService{
		Provider:   provider,
		UploadsDir: uploadsDir,
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		Folder:     "nextprime",
	}
}

// UploadImage sends one multipart file to the provider and returns its URL
// and public id.
func (s *MediaService) UploadImage(ctx context.Context, fh *multipart.FileHeader, folder string) (string, string, error) {
	if folder == "" {
		folder = s.Folder
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	resourceType := ResourceTypeForMime(fh.Header.Get("Content-Type"))
	return s.Provider.Upload(ctx, f, folder, resourceType)
}

// UploadImages uploads a gallery batch in order and returns the URLs.
func (s *MediaService) UploadImages(ctx context.Context, fhs []*multipart.FileHeader, folder string) ([]string, error) {
	urls := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		url, _, err := s.UploadImage(ctx, fh, folder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// SaveDocument stores an uploaded PDF on local disk under a
// collision-resistant name and returns its servable URL.
func (s *MediaService) SaveDocument(fh *multipart.FileHeader, prefix string) (string, error) {
	dir := filepath.Join(s.UploadsDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = ".pdf"
	}
	name := fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), ext)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return fmt.Sprintf("%s/uploads/%s/%s", s.BaseURL, uploadsSubdir, name), nil
}

// DeleteLocalByURL removes a locally stored document if the URL points at
// one. Missing files and foreign URLs are ignored.
func (s *MediaService) DeleteLocalByURL(url string) {
	m := localUploadPattern.FindStringSubmatch(url)
	if m == nil {
		return
	}
	path := filepath.Join(s.UploadsDir, uploadsSubdir, m[1])
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to delete local file %s: %v", path, err)
	}
}

// DeleteByURL routes a URL to the right deleter: provider-hosted URLs go to
// the provider, local upload URLs to disk, anything else is left alone.
func (s *MediaService) DeleteByURL(ctx context.Context, url string) {
	if IsCloudinaryURL(url) {
		publicID := CloudinaryPublicID(url)
		if publicID == "" {
			return
		}
		if err := s.Provider.Destroy(ctx, publicID, CloudinaryResourceType(url)); err != nil {
			log.Printf("provider destroy failed for %s: %v", publicID, err)
		}
		return
	}
	s.DeleteLocalByURL(url)
}

// CleanupRemoved deletes every URL in oldURLs that newURLs no longer
// references. Failures are logged and swallowed; cleanup never fails the
// record mutation it follows.
func (s *MediaService) CleanupRemoved(ctx context.Context, oldURLs, newURLs []string) {
	keep := make(map[string]struct{}, len(newURLs))
	for _, u := range newURLs {
		keep[u] = struct{}{}
	}
	seen := make(map[string]struct{}, len(oldURLs))
	for _, u := range oldURLs {
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		if _, ok := keep[u]; !ok {
			s.DeleteByURL(ctx, u)
		}
	}
}
