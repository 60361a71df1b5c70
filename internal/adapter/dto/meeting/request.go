package meeting

import (
	"time"
)

// CreateMeetingRequest represents the request to create a meeting.
// Scheduled meetings carry Date and Time as separate fields; instant
// meetings may carry an explicit MeetingDate or default to now.
type CreateMeetingRequest struct {
	Title            string     `json:"title" validate:"required,min=1,max=255"`
	ClientName       string     `json:"clientName" validate:"required,min=1,max=255"`
	OrganizationName string     `json:"organizationName" validate:"required,min=1,max=255"`
	MobileNumber     string     `json:"mobileNumber" validate:"required,min=5,max=20"`
	Description      *string    `json:"description,omitempty"`
	IsInstant        bool       `json:"isInstant"`
	MeetingDate      *time.Time `json:"meetingDate,omitempty"`
	Date             string     `json:"date,omitempty"`
	Time             string     `json:"time,omitempty"`
	Location         *string    `json:"location,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude        *float64   `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	ReminderMinutes  *int       `json:"reminderMinutes,omitempty" validate:"omitempty,min=0,max=10080"`
	SelfieURL        *string    `json:"selfieUrl,omitempty"`
}

// UpdateMeetingRequest represents a partial update of a meeting
type UpdateMeetingRequest struct {
	Title            *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	ClientName       *string    `json:"clientName,omitempty" validate:"omitempty,min=1,max=255"`
	OrganizationName *string    `json:"organizationName,omitempty" validate:"omitempty,min=1,max=255"`
	MobileNumber     *string    `json:"mobileNumber,omitempty" validate:"omitempty,min=5,max=20"`
	Description      *string    `json:"description,omitempty"`
	MeetingDate      *time.Time `json:"meetingDate,omitempty"`
	Location         *string    `json:"location,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude        *float64   `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	ReminderMinutes  *int       `json:"reminderMinutes,omitempty" validate:"omitempty,min=0,max=10080"`
	SelfieURL        *string    `json:"selfieUrl,omitempty"`
	Status           *string    `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Type       string `query:"type" validate:"omitempty,oneof=all today upcoming completed instant"`
	Date       string `query:"date"`
	ClientName string `query:"clientName"`
	Status     string `query:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// UpdateStatusRequest represents a status transition request
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}
