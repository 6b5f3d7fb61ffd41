package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"newsportal/internal/logging"
	"newsportal/internal/services"
	"newsportal/internal/upload"
	"newsportal/internal/validation"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validation.New(validation.CodeImageRequired, "Image is required"), http.StatusBadRequest, validation.CodeImageRequired},
		{"wrapped not found", fmt.Errorf("lookup: %w", services.ErrNotFound), http.StatusNotFound, CodeNotFound},
		{"already published", services.ErrAlreadyPublished, http.StatusConflict, CodeAlreadyPublished},
		{"permission", services.ErrPermissionDenied, http.StatusForbidden, CodePermissionDenied},
		{"file too large", fmt.Errorf("%w: 6MB", upload.ErrFileTooLarge), http.StatusRequestEntityTooLarge, CodeFileTooLarge},
		{"unknown", errors.New("pq: relation does not exist"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.GET("/", func(c *gin.Context) { respondError(c, logging.Discard(), tt.err, "Request failed") })

			w := performJSON(router, http.MethodGet, "/", nil)

			assert.Equal(t, tt.status, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.code, body["code"])
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "relation")
			}
		})
	}
}
