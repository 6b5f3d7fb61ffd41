package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"newsportal/database"
	"newsportal/internal/models"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	// ListUpcoming returns events dated on or after since, soonest first.
	ListUpcoming(ctx context.Context, since time.Time) ([]models.Event, error)
	Delete(ctx context.Context, id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return database.Conn(ctx, r.db).Create(event).Error
}

func (r *eventRepository) ListUpcoming(ctx context.Context, since time.Time) ([]models.Event, error) {
	events := []models.Event{}
	err := database.Conn(ctx, r.db).
		Where("date >= ?", since).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	result := database.Conn(ctx, r.db).Delete(&models.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
