package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HailNail/MindArc/internal/usecase"
)

var allowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadHandler pushes product images to the blob store and returns
// their public URL.
type UploadHandler struct {
	blobs usecase.BlobStore
}

func NewUploadHandler(blobs usecase.BlobStore) *UploadHandler {
	return &UploadHandler{blobs: blobs}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "no image file provided")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageTypes[ext] {
		badRequest(c, "images only")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "failed to read image file")
		return
	}
	defer file.Close()

	url, err := h.blobs.Upload(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "image uploaded successfully",
		"image":   url,
	})
}
