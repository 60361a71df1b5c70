package presenter

import (
	"github.com/meettrack-team/meettrack/internal/adapter/dto/meeting"
	"github.com/meettrack-team/meettrack/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	return &meeting.MeetingResponse{
		ID:               m.ID.String(),
		Title:            m.Title,
		ClientName:       m.ClientName,
		OrganizationName: m.OrganizationName,
		MobileNumber:     m.MobileNumber,
		Description:      m.Description,
		MeetingDate:      m.MeetingDate,
		IsInstant:        m.IsInstant,
		Status:           string(m.Status),
		Location:         m.Location,
		Latitude:         m.Latitude,
		Longitude:        m.Longitude,
		ReminderMinutes:  m.ReminderMinutes,
		SelfieURL:        m.SelfieURL,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToMeetingListResponse converts a slice of Meeting entities to MeetingListResponse
func ToMeetingListResponse(meetings []*entities.Meeting) *meeting.MeetingListResponse {
	responses := make([]*meeting.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}

	return &meeting.MeetingListResponse{
		Meetings: responses,
		Total:    len(responses),
	}
}
