package utils

import (
	"context"
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/meinhoongagan/handyhub/config"
)

// ErrUploadsDisabled is returned by NopUploader.
var ErrUploadsDisabled = errors.New("image uploads not configured")

// Uploader stores a file and returns its public URL. file is anything the
// Cloudinary SDK accepts: a path, a URL or an io.Reader.
type Uploader interface {
	Upload(ctx context.Context, file interface{}, publicID, folder string) (string, error)
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	preset string
}

// NewUploader returns a Cloudinary uploader, or a NopUploader when the
// credentials are missing.
func NewUploader(cfg config.CloudinaryConfig) (Uploader, error) {
	if !cfg.Enabled() {
		return NopUploader{}, nil
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld, preset: cfg.UploadPreset}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file interface{}, publicID, folder string) (string, error) {
	params := uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		UploadPreset:   u.preset,
		Transformation: "c_fill,w_800,h_600",
	}

	resp, err := u.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}

type NopUploader struct{}

func (NopUploader) Upload(ctx context.Context, file interface{}, publicID, folder string) (string, error) {
	return "", ErrUploadsDisabled
}
