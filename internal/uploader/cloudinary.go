package uploader

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	upapi "github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"favlib-backend/internal/config"
)

// uploadFolder is the logical folder all covers land in
const uploadFolder = "Favlib"

// CloudinaryUploader hosts cover images on Cloudinary
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader creates a new Cloudinary uploader from credentials
func NewCloudinaryUploader(cfg *config.CloudinaryConfig) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload sends the image to Cloudinary and returns the secure URL
func (u *CloudinaryUploader) Upload(ctx context.Context, image string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, image, upapi.UploadParams{Folder: uploadFolder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
