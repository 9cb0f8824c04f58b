package cloudinary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructax/internal/config"
)

func testConfig(baseURL string) config.CloudinaryConfig {
	return config.CloudinaryConfig{
		CloudName:    "demo-cloud",
		UploadPreset: "unsigned-preset",
		Folder:       "constructax",
		BaseURL:      baseURL,
	}
}

func imageUpload(content string) Upload {
	return Upload{
		Filename:    "site.jpg",
		ContentType: "image/jpeg",
		Size:        int64(len(content)),
		Reader:      strings.NewReader(content),
	}
}

func TestUploadImageSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1_1/demo-cloud/image/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "unsigned-preset", r.FormValue("upload_preset"))
		assert.Equal(t, "constructax", r.FormValue("folder"))

		_, _, err := r.FormFile("file")
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(UploadResult{
			SecureURL: "https://res.cloudinary.com/demo-cloud/image/upload/v1/constructax/site.jpg",
			PublicID:  "constructax/site",
			Width:     800,
			Height:    600,
			Format:    "jpg",
			Bytes:     1234,
		})
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL))

	result, err := client.UploadImage(context.Background(), imageUpload("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "constructax/site", result.PublicID)
	assert.Contains(t, result.SecureURL, "res.cloudinary.com")
}

func TestUploadImageInvalidPreset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Upload preset not found: upload_preset"}}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL))

	_, err := client.UploadImage(context.Background(), imageUpload("jpeg-bytes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload preset")
	assert.Contains(t, err.Error(), "unsigned-preset")
}

func TestUploadImageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"something broke"}}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL))

	_, err := client.UploadImage(context.Background(), imageUpload("jpeg-bytes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "something broke")
	assert.Contains(t, err.Error(), "code=500")
}

func TestUploadValidate(t *testing.T) {
	t.Run("rejects nil reader", func(t *testing.T) {
		err := Upload{Filename: "a.png", ContentType: "image/png"}.Validate()
		assert.EqualError(t, err, "no file provided")
	})

	t.Run("rejects non-image content type", func(t *testing.T) {
		u := Upload{Filename: "notes.pdf", ContentType: "application/pdf", Size: 10, Reader: strings.NewReader("x")}
		assert.EqualError(t, u.Validate(), "file must be an image")
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		u := Upload{Filename: "huge.png", ContentType: "image/png", Size: MaxUploadBytes + 1, Reader: strings.NewReader("x")}
		assert.EqualError(t, u.Validate(), "image size must be less than 10MB")
	})

	t.Run("accepts a valid image", func(t *testing.T) {
		assert.NoError(t, imageUpload("ok").Validate())
	})
}

func TestValidationHappensBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL))
	_, err := client.UploadImage(context.Background(), Upload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Size:        4,
		Reader:      strings.NewReader("text"),
	})

	require.Error(t, err)
	assert.False(t, called, "invalid upload must not reach the server")
}
