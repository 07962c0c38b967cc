package utils

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryConfig holds Cloudinary configuration
type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
	Folder       string
}

// AvatarUploader stores profile pictures on Cloudinary.
type AvatarUploader struct {
	cld    *cloudinary.Cloudinary
	preset string
	folder string
}

func NewAvatarUploader(cfg CloudinaryConfig) (*AvatarUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	folder := cfg.Folder
	if folder == "" {
		folder = "avatars"
	}
	return &AvatarUploader{cld: cld, preset: cfg.UploadPreset, folder: folder}, nil
}

// Upload stores the image under publicID and returns its secure URL.
func (u *AvatarUploader) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	overwrite := true
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         u.folder,
		UploadPreset:   u.preset,
		Overwrite:      &overwrite,
		Transformation: "c_thumb,w_200,h_200",
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", &UploadError{Message: resp.Error.Message}
	}
	return resp.SecureURL, nil
}

type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return "cloudinary: " + e.Message
}
