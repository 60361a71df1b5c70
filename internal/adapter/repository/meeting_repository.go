package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meettrack-team/meettrack/internal/domain/entities"
	"github.com/meettrack-team/meettrack/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Update updates an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}

// Delete deletes a meeting
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Meeting{}, id).Error
}

// List retrieves meetings matching the filters
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting

	query := r.db.WithContext(ctx).Model(&entities.Meeting{})

	now := filters.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	// Apply the list shape
	switch filters.Type {
	case repositories.MeetingListToday:
		dayStart := now.Truncate(24 * time.Hour)
		query = query.Where("meeting_date >= ? AND meeting_date < ?", dayStart, dayStart.Add(24*time.Hour))
	case repositories.MeetingListUpcoming:
		query = query.Where("meeting_date > ? AND status = ?", now, entities.MeetingStatusScheduled)
	case repositories.MeetingListCompleted:
		query = query.Where("status = ?", entities.MeetingStatusCompleted)
	case repositories.MeetingListInstant:
		query = query.Where("is_instant = ?", true)
	}

	// Additional filters
	if filters.Date != nil {
		dayStart := filters.Date.UTC().Truncate(24 * time.Hour)
		query = query.Where("meeting_date >= ? AND meeting_date < ?", dayStart, dayStart.Add(24*time.Hour))
	}
	if filters.ClientName != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.ClientName)
		query = query.Where("client_name ILIKE ?", searchPattern)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	// Completed meetings list newest first, everything else chronologically
	if filters.Type == repositories.MeetingListCompleted {
		query = query.Order("meeting_date DESC")
	} else {
		query = query.Order("meeting_date ASC")
	}

	err := query.Find(&meetings).Error
	return meetings, err
}

// FindCreatedBetween retrieves meetings created within [start, end)
func (r *meetingRepository) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&meetings).Error
	return meetings, err
}
