package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"constructax/pkg/clients/cloudinary"
)

// fakeUploader fails any file whose name contains "bad".
type fakeUploader struct{}

func (f *fakeUploader) UploadImage(_ context.Context, upload cloudinary.Upload) (*cloudinary.UploadResult, error) {
	if strings.Contains(upload.Filename, "bad") {
		return nil, errors.New("simulated CDN failure")
	}
	return &cloudinary.UploadResult{
		SecureURL: "https://res.cloudinary.com/demo/" + upload.Filename,
		PublicID:  "demo/" + upload.Filename,
		Format:    "jpg",
	}, nil
}

func multipartContext(t *testing.T, filenames []string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range filenames {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="images"; filename="`+name+`"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/uploads/images", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

func TestUploadImagesNoFiles(t *testing.T) {
	h := NewUploadHandler(&fakeUploader{}, zap.NewNop())

	c, w := multipartContext(t, nil)
	h.UploadImages(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No files provided", decodeResponse(t, w).Message)
}

func TestUploadImagesAllSucceed(t *testing.T) {
	h := NewUploadHandler(&fakeUploader{}, zap.NewNop())

	c, w := multipartContext(t, []string{"a.jpg", "b.jpg"})
	h.UploadImages(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, data["successCount"])
	assert.EqualValues(t, 0, data["failureCount"])
	assert.Len(t, data["urls"], 2)
}

func TestUploadImagesPartialFailureStillSucceeds(t *testing.T) {
	h := NewUploadHandler(&fakeUploader{}, zap.NewNop())

	c, w := multipartContext(t, []string{"good.jpg", "bad.jpg"})
	h.UploadImages(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.EqualValues(t, 1, data["successCount"])
	assert.EqualValues(t, 1, data["failureCount"])
}

func TestUploadImagesAllFail(t *testing.T) {
	h := NewUploadHandler(&fakeUploader{}, zap.NewNop())

	c, w := multipartContext(t, []string{"bad1.jpg", "bad2.jpg"})
	h.UploadImages(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Image upload failed", resp.Message)
	assert.Contains(t, resp.Error, "simulated CDN failure")
}
