package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meettrack-team/meettrack/internal/domain/entities"
)

// MeetingListType selects one of the canned list shapes exposed by the API
type MeetingListType string

const (
	MeetingListAll       MeetingListType = "all"
	MeetingListToday     MeetingListType = "today"
	MeetingListUpcoming  MeetingListType = "upcoming"
	MeetingListCompleted MeetingListType = "completed"
	MeetingListInstant   MeetingListType = "instant"
)

// IsValid checks if the list type is a known value
func (t MeetingListType) IsValid() bool {
	switch t {
	case MeetingListAll, MeetingListToday, MeetingListUpcoming, MeetingListCompleted, MeetingListInstant:
		return true
	}
	return false
}

// MeetingFilters represents filter options for listing meetings.
//
// "today" and "upcoming" are mutually exclusive query shapes over
// meeting_date: "today" bounds meeting_date to the current calendar day and
// ignores status, while "upcoming" requires meeting_date > now AND
// status = scheduled. A meeting dated today but already cancelled therefore
// shows under "today" and not under "upcoming"; this asymmetry is kept on
// purpose.
type MeetingFilters struct {
	Type       MeetingListType
	Date       *time.Time // bound meeting_date to this calendar day
	ClientName string     // case-insensitive substring match
	Status     *entities.MeetingStatus
	Now        time.Time // reference time for "today"/"upcoming"; zero means time.Now
}

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// Update updates an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete deletes a meeting
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves meetings matching the filters, ordered by meeting_date
	// (descending for the completed shape, ascending otherwise)
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, error)

	// FindCreatedBetween retrieves meetings whose created_at falls within
	// [start, end), ordered by created_at ascending. Used for analytics
	// windowing; created_at is authoritative there, not meeting_date.
	FindCreatedBetween(ctx context.Context, start, end time.Time) ([]*entities.Meeting, error)
}
