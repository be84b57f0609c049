// Package cloudstore adapts Cloudinary to the blob store port: it
// accepts an image stream and returns a durable public URL.
package cloudstore

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "mind-arc-project-uploads"

type Uploader struct {
	client *cloudinary.Cloudinary
}

func NewUploader(cloudName, apiKey, apiSecret string) (*Uploader, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: failed to initialise client: %w", err)
	}
	return &Uploader{client: client}, nil
}

func (u *Uploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	result, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: uploadFolder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary: failed to upload %s: %w", filename, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: failed to upload %s: %s", filename, result.Error.Message)
	}
	return result.SecureURL, nil
}
