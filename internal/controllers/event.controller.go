package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"newsportal/internal/models"
	"newsportal/internal/repository"
)

type EventController struct {
	repo repository.EventRepository
	log  *logrus.Logger
	now  func() time.Time
}

func NewEventController(repo repository.EventRepository, log *logrus.Logger) *EventController {
	return &EventController{repo: repo, log: log, now: time.Now}
}

type CreateEventRequest struct {
	Title string `json:"title" binding:"required" example:"NEET registration closes"`
	// RFC 3339 timestamp or a plain YYYY-MM-DD date.
	Date string `json:"date" binding:"required" example:"2024-03-15"`
	Link string `json:"link" example:"https://neet.nta.nic.in"`
}

func parseEventDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ListEvents godoc
// @Summary Upcoming events
// @Description Events from today onwards, soonest first
// @Tags event
// @Produce json
// @Success 200 {object} map[string]interface{} "Events retrieved successfully"
// @Router /api/events [get]
func (ec *EventController) ListEvents(c *gin.Context) {
	now := ec.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	events, err := ec.repo.ListUpcoming(c.Request.Context(), startOfDay)
	if err != nil {
		respondError(c, ec.log, err, "Failed to retrieve events")
		return
	}
	success(c, http.StatusOK, "Events retrieved successfully", events)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} map[string]interface{} "Event created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/events [post]
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		badRequest(c, "Title is required", nil)
		return
	}
	date, ok := parseEventDate(req.Date)
	if !ok {
		badRequest(c, "Date must be YYYY-MM-DD or an RFC 3339 timestamp", nil)
		return
	}

	event := &models.Event{Title: title, Date: date, Link: strings.TrimSpace(req.Link)}
	if err := ec.repo.Create(c.Request.Context(), event); err != nil {
		respondError(c, ec.log, err, "Failed to create event")
		return
	}
	success(c, http.StatusCreated, "Event created successfully", event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags event
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]interface{} "Event deleted successfully"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Router /api/events/{id} [delete]
func (ec *EventController) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ec.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ec.log, err, "Failed to delete event")
		return
	}
	success(c, http.StatusOK, "Event deleted successfully", nil)
}
