package meeting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meettrack-team/meettrack/internal/domain/entities"
	"github.com/meettrack-team/meettrack/internal/domain/repositories"
)

// Service defines the interface for the meeting use case
type Service interface {
	// CreateMeeting creates an instant or scheduled meeting
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// GetMeeting retrieves a meeting by ID
	GetMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error)

	// ListMeetings retrieves meetings with filters
	ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error)

	// UpdateMeeting applies a partial update to a meeting
	UpdateMeeting(ctx context.Context, meetingID uuid.UUID, input UpdateMeetingInput) (*entities.Meeting, error)

	// UpdateStatus transitions a meeting's status (forward-only)
	UpdateStatus(ctx context.Context, meetingID uuid.UUID, status entities.MeetingStatus) (*entities.Meeting, error)

	// DeleteMeeting deletes a meeting
	DeleteMeeting(ctx context.Context, meetingID uuid.UUID) error
}

// CreateMeetingInput represents input for creating a meeting.
// Scheduled meetings carry Date and Time ("2006-01-02" / "15:04"); instant
// meetings may carry an explicit MeetingDate or default to creation time.
type CreateMeetingInput struct {
	Title            string
	ClientName       string
	OrganizationName string
	MobileNumber     string
	Description      *string
	IsInstant        bool
	MeetingDate      *time.Time
	Date             string
	Time             string
	Location         *string
	Latitude         *float64
	Longitude        *float64
	ReminderMinutes  *int
	SelfieURL        *string
}

// UpdateMeetingInput represents a partial update: only non-nil fields are
// applied to the stored meeting, unset fields are left untouched.
type UpdateMeetingInput struct {
	Title            *string
	ClientName       *string
	OrganizationName *string
	MobileNumber     *string
	Description      *string
	MeetingDate      *time.Time
	Location         *string
	Latitude         *float64
	Longitude        *float64
	ReminderMinutes  *int
	SelfieURL        *string
	Status           *entities.MeetingStatus
}
