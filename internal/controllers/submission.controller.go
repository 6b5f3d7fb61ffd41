package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"newsportal/internal/middleware"
	"newsportal/internal/services"
)

type SubmissionController struct {
	curation *services.CurationService
	log      *logrus.Logger
}

func NewSubmissionController(curation *services.CurationService, log *logrus.Logger) *SubmissionController {
	return &SubmissionController{curation: curation, log: log}
}

type PublishSubmissionRequest struct {
	Category string `json:"category" example:"Exams"`
}

// CreateSubmission godoc
// @Summary Submit an article for review
// @Description Institutions propose an article; it stays pending until an admin publishes it
// @Tags submission
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body services.SubmissionInput true "Submission data"
// @Success 201 {object} map[string]interface{} "Submission created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/submissions [post]
func (sc *SubmissionController) CreateSubmission(c *gin.Context) {
	var input services.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	actor, _ := middleware.CurrentUser(c)
	submission, err := sc.curation.CreateSubmission(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, sc.log, err, "Failed to create submission")
		return
	}
	success(c, http.StatusCreated, "Submission created successfully", submission)
}

// ListPending godoc
// @Summary Pending intake
// @Description Pending submissions and raw articles, plus both merged newest first and tagged by origin
// @Tags submission
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Pending submissions retrieved successfully"
// @Router /api/submissions [get]
func (sc *SubmissionController) ListPending(c *gin.Context) {
	intake, err := sc.curation.PendingIntake(c.Request.Context())
	if err != nil {
		respondError(c, sc.log, err, "Failed to retrieve submissions")
		return
	}
	success(c, http.StatusOK, "Pending submissions retrieved successfully", intake)
}

// ListMine godoc
// @Summary My submissions
// @Description Submissions created by the calling institution
// @Tags submission
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Submissions retrieved successfully"
// @Router /api/submissions/mine [get]
func (sc *SubmissionController) ListMine(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	submissions, err := sc.curation.ListOwnSubmissions(c.Request.Context(), actor)
	if err != nil {
		respondError(c, sc.log, err, "Failed to retrieve submissions")
		return
	}
	success(c, http.StatusOK, "Submissions retrieved successfully", submissions)
}

// PublishSubmission godoc
// @Summary Publish a submission
// @Description Curate a pending submission into an article under the given category
// @Tags submission
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param body body PublishSubmissionRequest true "Category"
// @Success 200 {object} map[string]interface{} "Submission published successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Submission not found"
// @Failure 409 {object} map[string]interface{} "Already published"
// @Router /api/submissions/{id} [put]
func (sc *SubmissionController) PublishSubmission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req PublishSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	article, err := sc.curation.PublishSubmission(c.Request.Context(), id, req.Category)
	if err != nil {
		respondError(c, sc.log, err, "Failed to publish submission")
		return
	}
	success(c, http.StatusOK, "Submission published successfully", article)
}

// ListRawArticles godoc
// @Summary Pending raw articles
// @Description Scraped article stubs awaiting curation
// @Tags submission
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Raw articles retrieved successfully"
// @Router /api/submissions/raw-articles [get]
func (sc *SubmissionController) ListRawArticles(c *gin.Context) {
	raw, err := sc.curation.PendingRawArticles(c.Request.Context())
	if err != nil {
		respondError(c, sc.log, err, "Failed to retrieve raw articles")
		return
	}
	success(c, http.StatusOK, "Raw articles retrieved successfully", raw)
}

// PublishRawArticle godoc
// @Summary Publish a raw article
// @Description Publish an admin-written article for a scraped stub
// @Tags submission
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Raw article ID"
// @Param article body services.ArticleInput true "Article data"
// @Success 200 {object} map[string]interface{} "Raw article published successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Raw article not found"
// @Failure 409 {object} map[string]interface{} "Already published"
// @Router /api/submissions/raw-articles/{id} [put]
func (sc *SubmissionController) PublishRawArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	article, err := sc.curation.PublishRawArticle(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, sc.log, err, "Failed to publish raw article")
		return
	}
	success(c, http.StatusOK, "Raw article published successfully", article)
}
