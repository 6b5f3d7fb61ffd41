package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"newsportal/internal/upload"
)

const imageField = "image"

type UploadController struct {
	uploader *upload.Uploader
	log      *logrus.Logger
}

func NewUploadController(uploader *upload.Uploader, log *logrus.Logger) *UploadController {
	return &UploadController{uploader: uploader, log: log}
}

type UploadResponse struct {
	URL string `json:"url" example:"https://i.ibb.co/abc/cover.jpg"`
}

// UploadImage godoc
// @Summary Upload an image
// @Description Validate, compress and store an article image; returns its public URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "JPEG, PNG, GIF or WebP image"
// @Success 201 {object} map[string]interface{} "Image uploaded successfully"
// @Failure 400 {object} map[string]interface{} "File is required"
// @Failure 413 {object} map[string]interface{} "File is too large"
// @Failure 415 {object} map[string]interface{} "File type is not allowed"
// @Failure 500 {object} map[string]interface{} "Failed to upload image"
// @Router /api/upload [post]
func (uc *UploadController) UploadImage(c *gin.Context) {
	name, data, err := readFormFile(c, imageField, uc.uploader.Policy(upload.KindImage).MaxBytes)
	if err != nil {
		respondError(c, uc.log, err, "Failed to read upload")
		return
	}

	url, err := uc.uploader.UploadImage(c.Request.Context(), name, data)
	if err != nil {
		respondError(c, uc.log, err, "Failed to upload image")
		return
	}
	success(c, http.StatusCreated, "Image uploaded successfully", UploadResponse{URL: url})
}

// readFormFile reads at most maxBytes+1 bytes of a multipart file so the
// upload policy can still see that the limit was exceeded.
func readFormFile(c *gin.Context, field string, maxBytes int64) (string, []byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil, upload.ErrFileRequired
		}
		return "", nil, fmt.Errorf("%w: %v", upload.ErrFileRequired, err)
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return "", nil, fmt.Errorf("%w: %d bytes over a %d byte limit", upload.ErrFileTooLarge, header.Size, maxBytes)
	}

	f, err := header.Open()
	if err != nil {
		return "", nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	reader := io.Reader(f)
	if maxBytes > 0 {
		reader = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	return header.Filename, data, nil
}
