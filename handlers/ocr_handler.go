package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"nyaay-backend/ocr"
	"nyaay-backend/pkg/logger"
	"nyaay-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OCRHandler handles document image uploads and text extraction
type OCRHandler struct {
	extractor   ocr.Extractor
	storage     storage.Storage
	maxFileSize int64
}

// NewOCRHandler creates a new OCR handler
func NewOCRHandler(extractor ocr.Extractor, fileStorage storage.Storage) *OCRHandler {
	return &OCRHandler{
		extractor:   extractor,
		storage:     fileStorage,
		maxFileSize: 10 * 1024 * 1024, // 10MB
	}
}

// Upload handles POST /api/ocr. The uploaded image is retained in storage
// and its transcribed text returned for use with /api/analyze.
func (h *OCRHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "File is required",
			},
		})
		return
	}

	if fileHeader.Size > h.maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_TOO_LARGE",
				"message": fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize),
			},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_READ_FAILED",
				"message": err.Error(),
			},
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_READ_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	fileID := uuid.New()
	storagePath, err := h.storage.Upload(c.Request.Context(), fileID, fileHeader.Filename, bytes.NewReader(data))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	text, err := h.extractor.ExtractText(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, ocr.ErrDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "OCR_DISABLED",
					"message": "Document text extraction is not available on this server.",
				},
			})
		case errors.Is(err, ocr.ErrEmptyText):
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "OCR_EMPTY",
					"message": "OCR produced empty or unreadable text.",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "OCR_FAILED",
					"message": err.Error(),
				},
			})
		}
		return
	}

	logger.Info(c.Request.Context(), "document transcribed",
		"file_id", fileID,
		"storage_path", storagePath,
		"chars", len(text),
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"file_id":       fileID,
			"document_text": text,
		},
	})
}
