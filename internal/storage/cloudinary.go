// Package storage uploads court photos to Cloudinary and hands back the
// delivery URL stored on the court row.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores an image and returns its public delivery URL. The court
// photo handler accepts any implementation so tests can stub it out.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, publicID string) (string, error)
}

// CloudinaryStorage uploads to a Cloudinary cloud, one folder per
// deployment.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage initializes the client from a cloudinary:// URL.
func NewCloudinaryStorage(cloudinaryURL, folder string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("storage: init cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld, folder: folder}, nil
}

// Upload pushes the image under a deterministic public ID so re-uploading a
// court's photo overwrites the previous one instead of accumulating assets.
func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	overwrite := true
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:    s.folder,
		PublicID:  publicID,
		Overwrite: &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload: %w", err)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("storage: upload returned no URL")
	}
	return res.SecureURL, nil
}
