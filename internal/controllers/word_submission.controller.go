package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"newsportal/internal/middleware"
	"newsportal/internal/services"
	"newsportal/internal/upload"
)

const wordFileField = "wordFile"

type WordSubmissionController struct {
	curation *services.CurationService
	uploader *upload.Uploader
	log      *logrus.Logger
}

func NewWordSubmissionController(curation *services.CurationService, uploader *upload.Uploader, log *logrus.Logger) *WordSubmissionController {
	return &WordSubmissionController{curation: curation, uploader: uploader, log: log}
}

type ReviewWordSubmissionRequest struct {
	Status     string  `json:"status" example:"reviewing"`
	AdminNotes *string `json:"adminNotes" example:"Needs a cover image"`
}

// UploadWordSubmission godoc
// @Summary Upload a Word document
// @Description Institutions upload a .docx file; its text is extracted and stored for review
// @Tags word-submission
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param wordFile formData file true ".docx document"
// @Success 201 {object} map[string]interface{} "Word document submitted successfully"
// @Failure 400 {object} map[string]interface{} "File is required"
// @Failure 413 {object} map[string]interface{} "File is too large"
// @Failure 415 {object} map[string]interface{} "File type is not allowed"
// @Failure 422 {object} map[string]interface{} "Could not extract the document"
// @Router /api/word-submissions [post]
func (wc *WordSubmissionController) UploadWordSubmission(c *gin.Context) {
	name, data, err := readFormFile(c, wordFileField, wc.uploader.Policy(upload.KindDocument).MaxBytes)
	if err != nil {
		respondError(c, wc.log, err, "Failed to read upload")
		return
	}

	mime, err := wc.uploader.CheckDocument(data)
	if err != nil {
		respondError(c, wc.log, err, "Failed to read upload")
		return
	}

	actor, _ := middleware.CurrentUser(c)
	submission, err := wc.curation.SubmitWordDocument(c.Request.Context(), actor, filepath.Base(name), data, mime)
	if err != nil {
		respondError(c, wc.log, err, "Failed to store word submission")
		return
	}
	success(c, http.StatusCreated, "Word document submitted successfully", submission)
}

// ListWordSubmissions godoc
// @Summary List Word submissions
// @Tags word-submission
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, reviewing, published or rejected"
// @Success 200 {object} map[string]interface{} "Word submissions retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Router /api/word-submissions [get]
func (wc *WordSubmissionController) ListWordSubmissions(c *gin.Context) {
	submissions, err := wc.curation.ListWordSubmissions(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, wc.log, err, "Failed to retrieve word submissions")
		return
	}
	success(c, http.StatusOK, "Word submissions retrieved successfully", submissions)
}

// GetWordSubmission godoc
// @Summary Get a Word submission
// @Description Submission details and extracted data, without the file bytes
// @Tags word-submission
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word submission ID"
// @Success 200 {object} map[string]interface{} "Word submission retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Word submission not found"
// @Router /api/word-submissions/{id} [get]
func (wc *WordSubmissionController) GetWordSubmission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	submission, err := wc.curation.GetWordSubmission(c.Request.Context(), id)
	if err != nil {
		respondError(c, wc.log, err, "Failed to retrieve word submission")
		return
	}
	success(c, http.StatusOK, "Word submission retrieved successfully", submission)
}

// DownloadWordSubmission godoc
// @Summary Download the original document
// @Tags word-submission
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Security BearerAuth
// @Param id path int true "Word submission ID"
// @Success 200 {file} file "Original .docx"
// @Failure 404 {object} map[string]interface{} "Word submission not found"
// @Router /api/word-submissions/{id}/file [get]
func (wc *WordSubmissionController) DownloadWordSubmission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	submission, err := wc.curation.GetWordSubmissionFile(c.Request.Context(), id)
	if err != nil {
		respondError(c, wc.log, err, "Failed to retrieve word submission")
		return
	}

	mime := submission.MimeType
	if mime == "" {
		mime = upload.MIMEDocx
	}
	c.Header("Content-Disposition", `attachment; filename="`+filepath.Base(submission.FileName)+`"`)
	c.Data(http.StatusOK, mime, submission.FileData)
}

// ReviewWordSubmission godoc
// @Summary Review a Word submission
// @Description Move a submission to reviewing or rejected, optionally with notes
// @Tags word-submission
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word submission ID"
// @Param body body ReviewWordSubmissionRequest true "New status and notes"
// @Success 200 {object} map[string]interface{} "Word submission updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Word submission not found"
// @Failure 409 {object} map[string]interface{} "Already published"
// @Router /api/word-submissions/{id}/status [put]
func (wc *WordSubmissionController) ReviewWordSubmission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ReviewWordSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	submission, err := wc.curation.ReviewWordSubmission(c.Request.Context(), id, req.Status, req.AdminNotes)
	if err != nil {
		respondError(c, wc.log, err, "Failed to update word submission")
		return
	}
	success(c, http.StatusOK, "Word submission updated successfully", submission)
}

// PublishWordSubmission godoc
// @Summary Publish a Word submission
// @Description Publish the extracted data, overridden by any fields supplied
// @Tags word-submission
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word submission ID"
// @Param body body services.WordPublishInput true "Overrides"
// @Success 200 {object} map[string]interface{} "Word submission published successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Word submission not found"
// @Failure 409 {object} map[string]interface{} "Already published"
// @Router /api/word-submissions/{id}/publish [post]
func (wc *WordSubmissionController) PublishWordSubmission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.WordPublishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	article, err := wc.curation.PublishWordSubmission(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, wc.log, err, "Failed to publish word submission")
		return
	}
	success(c, http.StatusOK, "Word submission published successfully", article)
}
