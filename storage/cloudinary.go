package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "kpd"

// Uploader stores listing images and returns their public URLs
type Uploader interface {
	Upload(ctx context.Context, file multipart.File, filename string) (string, error)
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// New creates a Cloudinary-backed Uploader from CLOUDINARY_URL
func New() (Uploader, error) {
	url := os.Getenv("CLOUDINARY_URL")
	if url == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is not set")
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &cloudinaryUploader{cld: cld}, nil
}

func (c *cloudinaryUploader) Upload(ctx context.Context, file multipart.File, filename string) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: uploadFolder,
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed for %s: %s", filename, resp.Error.Message)
	}
	return resp.SecureURL, nil
}
