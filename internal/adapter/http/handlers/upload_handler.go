package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	response "unimarket/internal/adapter/http/dto/response"
	"unimarket/internal/usecase/interfaces"
	"unimarket/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler stores listing images in the object storage bucket.

type UploadHandler struct {
	storage interfaces.IFileStorage
}

func NewUploadHandler(storage interfaces.IFileStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload accepts a multipart "file" field and returns the public URL of the
// stored object. Keys are <unix-ms>-<random>.<ext> to avoid collisions.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Printf("[upload][handler] missing file err=%v", err)
		appErr := pkg.NewDomainErrorSimple("MISSING_FILE", "No file provided", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Printf("[upload][handler] open failed name=%s err=%v", fileHeader.Filename, err)
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Failed to read upload", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.storage.Upload(c.Request.Context(), key, contentType, f)
	if err != nil {
		log.Printf("[upload][handler] store failed key=%s err=%v", key, err)
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Failed to store upload", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[upload][handler] upload success key=%s size=%d", key, fileHeader.Size)

	c.JSON(http.StatusOK, response.UploadResponse{Success: true, URL: url, Key: key})
}
