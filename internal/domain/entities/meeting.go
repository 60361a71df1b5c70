package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the current status of a meeting
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// IsValid checks if the meeting status is a known value
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}

// Meeting represents a client meeting: either an instant field visit recorded
// at the moment it occurs, or an appointment scheduled for a future date.
type Meeting struct {
	ID               uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title            string        `gorm:"type:varchar(255);not null" json:"title"`
	ClientName       string        `gorm:"type:varchar(255);not null;index" json:"client_name"`
	OrganizationName string        `gorm:"type:varchar(255);not null;index" json:"organization_name"`
	MobileNumber     string        `gorm:"type:varchar(20);not null" json:"mobile_number"`
	Description      *string       `gorm:"type:text" json:"description,omitempty"`
	MeetingDate      time.Time     `gorm:"not null;index" json:"meeting_date"`
	Location         *string       `gorm:"type:varchar(500)" json:"location,omitempty"`
	Latitude         *float64      `gorm:"type:float8" json:"latitude,omitempty"`
	Longitude        *float64      `gorm:"type:float8" json:"longitude,omitempty"`
	IsInstant        bool          `gorm:"not null;default:false;index" json:"is_instant"`
	ReminderMinutes  *int          `json:"reminder_minutes,omitempty"`
	SelfieURL        *string       `gorm:"type:varchar(500)" json:"selfie_url,omitempty"`
	Status           MeetingStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt        time.Time     `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// IsCompleted checks if the meeting has been completed
func (m *Meeting) IsCompleted() bool {
	return m.Status == MeetingStatusCompleted
}

// IsCancelled checks if the meeting has been cancelled
func (m *Meeting) IsCancelled() bool {
	return m.Status == MeetingStatusCancelled
}

// IsUpcoming checks if the meeting is still ahead and not cancelled or done.
// Classification is driven by meeting_date, never created_at.
func (m *Meeting) IsUpcoming(now time.Time) bool {
	return m.MeetingDate.After(now) && m.Status == MeetingStatusScheduled
}

// Complete marks the meeting as completed
func (m *Meeting) Complete() {
	m.Status = MeetingStatusCompleted
}

// Cancel marks the meeting as cancelled
func (m *Meeting) Cancel() {
	m.Status = MeetingStatusCancelled
}

// CanTransitionTo reports whether the status transition is allowed.
// Transitions are forward-only: scheduled meetings may complete or cancel,
// completed and cancelled meetings never return to scheduled.
func (m *Meeting) CanTransitionTo(next MeetingStatus) bool {
	if !next.IsValid() || next == m.Status {
		return false
	}
	return m.Status == MeetingStatusScheduled
}

// NewInstantMeeting creates a meeting recorded at the moment it occurs.
// Instant meetings are auto-completed and dated at creation time.
func NewInstantMeeting(title, clientName, organizationName, mobileNumber string) *Meeting {
	now := time.Now().UTC()
	return &Meeting{
		ID:               uuid.New(),
		Title:            title,
		ClientName:       clientName,
		OrganizationName: organizationName,
		MobileNumber:     mobileNumber,
		MeetingDate:      now,
		IsInstant:        true,
		Status:           MeetingStatusCompleted,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// NewScheduledMeeting creates a meeting planned for a future date
func NewScheduledMeeting(title, clientName, organizationName, mobileNumber string, meetingDate time.Time) *Meeting {
	now := time.Now().UTC()
	return &Meeting{
		ID:               uuid.New(),
		Title:            title,
		ClientName:       clientName,
		OrganizationName: organizationName,
		MobileNumber:     mobileNumber,
		MeetingDate:      meetingDate,
		IsInstant:        false,
		Status:           MeetingStatusScheduled,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Validate validates meeting data
func (m *Meeting) Validate() error {
	if m.Title == "" {
		return ErrInvalidTitle
	}
	if m.ClientName == "" {
		return ErrInvalidClientName
	}
	if m.OrganizationName == "" {
		return ErrInvalidOrganizationName
	}
	if m.MobileNumber == "" {
		return ErrInvalidMobileNumber
	}
	if m.MeetingDate.IsZero() {
		return ErrInvalidMeetingDate
	}
	if !m.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
