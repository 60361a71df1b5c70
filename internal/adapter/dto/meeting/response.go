package meeting

import (
	"time"
)

// MeetingResponse represents a meeting in API responses
type MeetingResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	ClientName       string     `json:"clientName"`
	OrganizationName string     `json:"organizationName"`
	MobileNumber     string     `json:"mobileNumber"`
	Description      *string    `json:"description,omitempty"`
	MeetingDate      time.Time  `json:"meetingDate"`
	IsInstant        bool       `json:"isInstant"`
	Status           string     `json:"status"`
	Location         *string    `json:"location,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	ReminderMinutes  *int       `json:"reminderMinutes,omitempty"`
	SelfieURL        *string    `json:"selfieUrl,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// MeetingListResponse represents a list of meetings
type MeetingListResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int                `json:"total"`
}
