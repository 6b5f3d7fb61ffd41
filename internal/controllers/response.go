package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"newsportal/internal/extract"
	"newsportal/internal/services"
	"newsportal/internal/upload"
	"newsportal/internal/validation"
)

const (
	CodeInvalidID                     = "INVALID_ID"
	CodeInvalidRequest                = validation.CodeInvalidRequest
	CodeNotFound                      = "NOT_FOUND"
	CodeAlreadyPublished              = "ALREADY_PUBLISHED"
	CodeInvalidStatus                 = "INVALID_STATUS"
	CodePermissionDenied              = "PERMISSION_DENIED"
	CodeExtractionFailed              = "EXTRACTION_FAILED"
	CodeEmailTaken                    = "EMAIL_TAKEN"
	CodeInvalidCredentials            = "INVALID_CREDENTIALS"
	CodeEmailNotVerified              = "EMAIL_NOT_VERIFIED"
	CodeAlreadyVerified               = "ALREADY_VERIFIED"
	CodeInvalidVerification           = "INVALID_VERIFICATION"
	CodeVerificationMethodUnsupported = "VERIFICATION_METHOD_UNSUPPORTED"
	CodeInvalidResetToken             = "INVALID_RESET_TOKEN"
	CodeFileRequired                  = "FILE_REQUIRED"
	CodeFileTooLarge                  = "FILE_TOO_LARGE"
	CodeUnsupportedFileType           = "UNSUPPORTED_FILE_TYPE"
	CodeInternal                      = "INTERNAL_ERROR"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{
	{services.ErrNotFound, http.StatusNotFound, CodeNotFound, "Resource not found"},
	{gorm.ErrRecordNotFound, http.StatusNotFound, CodeNotFound, "Resource not found"},
	{services.ErrAlreadyPublished, http.StatusConflict, CodeAlreadyPublished, "Already published"},
	{services.ErrInvalidStatus, http.StatusBadRequest, CodeInvalidStatus, "Invalid status"},
	{services.ErrPermissionDenied, http.StatusForbidden, CodePermissionDenied, "You do not have permission to perform this action"},
	{extract.ErrDocumentTooLarge, http.StatusRequestEntityTooLarge, CodeFileTooLarge, "Document is too large"},
	{services.ErrExtractionFailed, http.StatusUnprocessableEntity, CodeExtractionFailed, "Could not extract the document"},
	{services.ErrEmailTaken, http.StatusConflict, CodeEmailTaken, "Email already registered"},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid email or password"},
	{services.ErrEmailNotVerified, http.StatusForbidden, CodeEmailNotVerified, "Email address is not verified"},
	{services.ErrAlreadyVerified, http.StatusBadRequest, CodeAlreadyVerified, "Email address is already verified"},
	{services.ErrInvalidVerification, http.StatusBadRequest, CodeInvalidVerification, "Invalid or expired verification code"},
	{services.ErrVerificationMethodUnsupported, http.StatusBadRequest, CodeVerificationMethodUnsupported, "This verification method is not enabled"},
	{services.ErrInvalidResetToken, http.StatusBadRequest, CodeInvalidResetToken, "Invalid or expired reset token"},
	{upload.ErrFileRequired, http.StatusBadRequest, CodeFileRequired, "File is required"},
	{upload.ErrFileTooLarge, http.StatusRequestEntityTooLarge, CodeFileTooLarge, "File is too large"},
	{upload.ErrUnsupportedType, http.StatusUnsupportedMediaType, CodeUnsupportedFileType, "File type is not allowed"},
}

// respondError writes the error envelope for err. Unknown errors become a
// 500 and are logged with fallback as context.
func respondError(c *gin.Context, log *logrus.Logger, err error, fallback string) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"code":    verr.Code,
			"message": verr.Message,
			"error":   verr.Error(),
		})
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			c.JSON(m.status, gin.H{
				"status":  "error",
				"code":    m.code,
				"message": m.message,
				"error":   err.Error(),
			})
			return
		}
	}

	log.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Error(fallback)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"code":    CodeInternal,
		"message": fallback,
		"error":   "Internal server error",
	})
}

func badRequest(c *gin.Context, message string, err error) {
	detail := message
	if err != nil {
		detail = err.Error()
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"code":    CodeInvalidRequest,
		"message": message,
		"error":   detail,
	})
}

// parseID reads a positive integer path parameter, answering 400 itself
// when it is not one.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"code":    CodeInvalidID,
			"message": "Invalid ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}
