package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"constructax/internal/responses"
	"constructax/pkg/clients/cloudinary"
)

type UploadHandler struct {
	uploader cloudinary.Uploader
	logger   *zap.Logger
}

func NewUploadHandler(uploader cloudinary.Uploader, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		logger:   logger,
	}
}

// UploadOutcome is the per-file result of a batch upload.
type UploadOutcome struct {
	Success  bool   `json:"success"`
	URL      string `json:"url,omitempty"`
	PublicID string `json:"publicId,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Format   string `json:"format,omitempty"`
	Bytes    int64  `json:"bytes,omitempty"`
	Error    string `json:"error,omitempty"`
}

// UploadImages handles POST /api/v1/uploads/images
//
// Accepts multipart form files under "images", pushes them to the CDN
// concurrently, and reports per-file outcomes. Partial success is a
// success: the caller gets the URLs that made it plus failure counts.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid multipart form")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		responses.Fail(c, http.StatusBadRequest, nil, "No files provided")
		return
	}

	outcomes := make([]UploadOutcome, len(files))

	var wg sync.WaitGroup
	for i, fh := range files {
		wg.Add(1)
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			outcomes[i] = h.uploadOne(c, fh)
		}(i, fh)
	}
	wg.Wait()

	var urls []string
	failureCount := 0
	for _, outcome := range outcomes {
		if outcome.Success {
			urls = append(urls, outcome.URL)
		} else {
			failureCount++
		}
	}

	if len(urls) == 0 {
		first := outcomes[0].Error
		responses.Fail(c, http.StatusBadGateway, fmt.Errorf("all %d upload(s) failed: %s", failureCount, first), "Image upload failed")
		return
	}

	if failureCount > 0 {
		h.logger.Warn("partial upload batch",
			zap.Int("succeeded", len(urls)),
			zap.Int("failed", failureCount),
		)
	}

	responses.Success(c, http.StatusOK, gin.H{
		"urls":         urls,
		"results":      outcomes,
		"successCount": len(urls),
		"failureCount": failureCount,
	}, "Images uploaded")
}

func (h *UploadHandler) uploadOne(c *gin.Context, fh *multipart.FileHeader) UploadOutcome {
	file, err := fh.Open()
	if err != nil {
		return UploadOutcome{Error: err.Error()}
	}
	defer file.Close()

	result, err := h.uploader.UploadImage(c.Request.Context(), cloudinary.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      file,
	})
	if err != nil {
		return UploadOutcome{Error: err.Error()}
	}

	return UploadOutcome{
		Success:  true,
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
		Format:   result.Format,
		Bytes:    result.Bytes,
	}
}
