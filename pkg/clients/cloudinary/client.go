package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"constructax/internal/config"
)

// MaxUploadBytes is the pre-upload size ceiling. Larger files are
// rejected before any network call.
const MaxUploadBytes = 10 * 1024 * 1024

// Uploader exposes the image CDN operations used by the application.
type Uploader interface {
	UploadImage(ctx context.Context, upload Upload) (*UploadResult, error)
}

// Client is a resty-backed implementation of Uploader targeting the
// Cloudinary unsigned upload endpoint. No API secret is involved: the
// preset alone authorizes the upload.
type Client struct {
	httpClient   *resty.Client
	cloudName    string
	uploadPreset string
	folder       string
}

// New builds a Cloudinary client using the provided configuration values.
func New(cfg config.CloudinaryConfig) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(fmt.Sprintf("%s/v1_1/%s", base, cfg.CloudName)).
		SetTimeout(30 * time.Second)

	return &Client{
		httpClient:   restyClient,
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		folder:       cfg.Folder,
	}
}

// Upload describes one file to push to the CDN.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadResult mirrors the successful response from Cloudinary.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	Bytes     int64  `json:"bytes"`
}

// apiError represents a Cloudinary error payload.
type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Validate applies the client-side constraints: image MIME type only,
// size below the ceiling. Runs before any bytes leave the process.
func (u Upload) Validate() error {
	if u.Reader == nil {
		return errors.New("no file provided")
	}
	if !strings.HasPrefix(u.ContentType, "image/") {
		return errors.New("file must be an image")
	}
	if u.Size > MaxUploadBytes {
		return errors.New("image size must be less than 10MB")
	}
	return nil
}

func (c *Client) UploadImage(ctx context.Context, upload Upload) (*UploadResult, error) {
	if err := upload.Validate(); err != nil {
		return nil, err
	}

	result := new(UploadResult)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFileReader("file", upload.Filename, upload.Reader).
		SetFormData(map[string]string{
			"upload_preset": c.uploadPreset,
			"folder":        c.folder,
		}).
		SetResult(result).
		SetError(apiErr).
		Post("/image/upload")
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error.Message
		if resp.StatusCode() == http.StatusBadRequest && strings.Contains(message, "upload_preset") {
			return nil, fmt.Errorf("upload preset %q not found or not unsigned, check the Cloudinary dashboard", c.uploadPreset)
		}
		if message == "" {
			message = fmt.Sprintf("upload failed (%d)", resp.StatusCode())
		}
		return nil, fmt.Errorf("cloudinary api error: code=%d, message=%s", resp.StatusCode(), message)
	}

	return result, nil
}
