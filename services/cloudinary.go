package services

import (
	"context"
	"errors"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaProvider is the slice of the external media host the services need.
type MediaProvider interface {
	Upload(ctx context.Context, file io.Reader, folder, resourceType string) (url, publicID string, err error)
	Destroy(ctx context.Context, publicID, resourceType string) error
}

type cloudinaryProvider struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryProvider builds the Cloudinary client from CLOUDINARY_URL or
// the discrete CLOUDINARY_* variables.
func NewCloudinaryProvider() (MediaProvider, error) {
	if rawURL := strings.TrimSpace(os.Getenv("CLOUDINARY_URL")); rawURL != "" {
		cld, err := cloudinary.NewFromURL(rawURL)
		if err != nil {
			return nil, err
		}
		return &cloudinaryProvider{cld: cld}, nil
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &cloudinaryProvider{cld: cld}, nil
}

func (p *cloudinaryProvider) Upload(ctx context.Context, file io.Reader, folder, resourceType string) (string, string, error) {
	params := uploader.UploadParams{Folder: folder}
	if resourceType != ResourceTypeImage {
		params.ResourceType = resourceType
	}
	res, err := p.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", "", err
	}
	return res.SecureURL, res.PublicID, nil
}

func (p *cloudinaryProvider) Destroy(ctx context.Context, publicID, resourceType string) error {
	_, err := p.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	return err
}

const (
	ResourceTypeImage = "image"
	ResourceTypeVideo = "video"
	ResourceTypeRaw   = "raw"
)

var (
	cloudinaryIDPattern   = regexp.MustCompile(`cloudinary\.com/[^/]+/(image|video|raw)/upload/(?:v\d+/)?(.+)`)
	cloudinaryTypePattern = regexp.MustCompile(`cloudinary\.com/[^/]+/(image|video|raw)/upload/`)
)

// ResourceTypeForMime picks the provider resource kind for a MIME type.
// The same mapping is used when uploading and when deleting.
func ResourceTypeForMime(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return ResourceTypeVideo
	case strings.HasPrefix(mimeType, "application/"):
		return ResourceTypeRaw
	default:
		return ResourceTypeImage
	}
}

// CloudinaryPublicID extracts the provider resource identifier from a
// delivery URL, or "" when the URL is not provider-hosted.
func CloudinaryPublicID(url string) string {
	m := cloudinaryIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	withExt := m[2]
	if dot := strings.LastIndex(withExt, "."); dot > 0 {
		return withExt[:dot]
	}
	return withExt
}

// CloudinaryResourceType reads the resource kind encoded in a delivery URL,
// defaulting to image.
func CloudinaryResourceType(url string) string {
	m := cloudinaryTypePattern.FindStringSubmatch(url)
	if m == nil {
		return ResourceTypeImage
	}
	return m[1]
}

func IsCloudinaryURL(url string) bool {
	return cloudinaryTypePattern.MatchString(url)
}
