package controllers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"newsportal/internal/logging"
	"newsportal/internal/models"
	"newsportal/internal/repository/mocks"
)

func TestEventController(t *testing.T) {
	repo := new(mocks.MockEventRepository)
	controller := NewEventController(repo, logging.Discard())
	controller.now = func() time.Time { return time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC) }

	repo.On("ListUpcoming", mock.Anything, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)).
		Return([]models.Event{{ID: 1, Title: "NEET registration closes"}}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.Title == "NEET registration closes" && e.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	})).Return(nil)
	repo.On("Delete", mock.Anything, uint(1)).Return(nil)
	repo.On("Delete", mock.Anything, uint(2)).Return(gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.GET("/api/events", controller.ListEvents)
	router.POST("/api/events", controller.CreateEvent)
	router.DELETE("/api/events/:id", controller.DeleteEvent)

	w := performJSON(router, http.MethodGet, "/api/events", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 1)

	w = performJSON(router, http.MethodPost, "/api/events", CreateEventRequest{Title: "NEET registration closes", Date: "2024-03-15"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(router, http.MethodPost, "/api/events", CreateEventRequest{Title: "Bad date", Date: "15/03/2024"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusOK, performJSON(router, http.MethodDelete, "/api/events/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, performJSON(router, http.MethodDelete, "/api/events/2", nil).Code)
	repo.AssertExpectations(t)
}

func TestParseEventDate(t *testing.T) {
	d, ok := parseEventDate("2024-03-15T09:00:00+05:30")
	assert.True(t, ok)
	assert.Equal(t, 3, d.UTC().Hour())

	_, ok = parseEventDate("tomorrow")
	assert.False(t, ok)
}

func TestHealth(t *testing.T) {
	router := setupTestRouter()
	router.GET("/ok", NewHealthController(func() error { return nil }, logging.Discard()).Health)
	router.GET("/down", NewHealthController(func() error { return errors.New("dial tcp: refused") }, logging.Discard()).Health)

	assert.Equal(t, http.StatusOK, performJSON(router, http.MethodGet, "/ok", nil).Code)
	w := performJSON(router, http.MethodGet, "/down", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "refused")
}
