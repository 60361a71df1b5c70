package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meettrack-team/meettrack/internal/domain/entities"
	"github.com/meettrack-team/meettrack/internal/domain/repositories"
	usecaseErrors "github.com/meettrack-team/meettrack/internal/usecase/errors"
)

// scheduledDateTimeLayout joins the date and time fields of a scheduled
// meeting request into one timestamp
const scheduledDateTimeLayout = "2006-01-02T15:04"

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	now         func() time.Time
}

// NewMeetingService creates a new meeting service
func NewMeetingService(meetingRepo repositories.MeetingRepository) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		now:         time.Now,
	}
}

// CreateMeeting creates an instant or scheduled meeting. Validation runs
// before any store write: a scheduled meeting without date or time fails
// with no side effect.
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	if input.Title == "" || input.ClientName == "" || input.OrganizationName == "" || input.MobileNumber == "" {
		return nil, usecaseErrors.ErrMissingRequiredFields
	}

	var meeting *entities.Meeting
	if input.IsInstant {
		meeting = entities.NewInstantMeeting(input.Title, input.ClientName, input.OrganizationName, input.MobileNumber)
		if input.MeetingDate != nil {
			meeting.MeetingDate = input.MeetingDate.UTC()
		} else {
			meeting.MeetingDate = s.now().UTC()
		}
		// Device capture only happens for instant meetings
		meeting.Latitude = input.Latitude
		meeting.Longitude = input.Longitude
		meeting.SelfieURL = input.SelfieURL
	} else {
		if input.Date == "" || input.Time == "" {
			return nil, usecaseErrors.ErrDateTimeRequired
		}
		meetingDate, err := time.ParseInLocation(scheduledDateTimeLayout, input.Date+"T"+input.Time, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrDateTimeRequired, err)
		}
		meeting = entities.NewScheduledMeeting(input.Title, input.ClientName, input.OrganizationName, input.MobileNumber, meetingDate)
		meeting.ReminderMinutes = input.ReminderMinutes
	}

	meeting.Description = input.Description
	meeting.Location = input.Location

	if err := meeting.Validate(); err != nil {
		return nil, err
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	return meeting, nil
}

// GetMeeting retrieves a meeting by ID
func (s *MeetingService) GetMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListMeetings retrieves meetings with filters
func (s *MeetingService) ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	if filters.Type == "" {
		filters.Type = repositories.MeetingListAll
	}
	if !filters.Type.IsValid() {
		return nil, usecaseErrors.ErrInvalidListType
	}

	meetings, err := s.meetingRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// UpdateMeeting applies a partial update: only the fields present in the
// input are merged onto the stored record.
func (s *MeetingService) UpdateMeeting(ctx context.Context, meetingID uuid.UUID, input UpdateMeetingInput) (*entities.Meeting, error) {
	meeting, err := s.GetMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && *input.Title != "" {
		meeting.Title = *input.Title
	}
	if input.ClientName != nil && *input.ClientName != "" {
		meeting.ClientName = *input.ClientName
	}
	if input.OrganizationName != nil && *input.OrganizationName != "" {
		meeting.OrganizationName = *input.OrganizationName
	}
	if input.MobileNumber != nil && *input.MobileNumber != "" {
		meeting.MobileNumber = *input.MobileNumber
	}
	if input.Description != nil {
		meeting.Description = input.Description
	}
	if input.MeetingDate != nil {
		meeting.MeetingDate = input.MeetingDate.UTC()
	}
	if input.Location != nil {
		meeting.Location = input.Location
	}
	if input.Latitude != nil {
		meeting.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		meeting.Longitude = input.Longitude
	}
	if input.ReminderMinutes != nil {
		meeting.ReminderMinutes = input.ReminderMinutes
	}
	if input.SelfieURL != nil {
		meeting.SelfieURL = input.SelfieURL
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, usecaseErrors.ErrInvalidMeetingStatus
		}
		meeting.Status = *input.Status
	}

	if err := meeting.Validate(); err != nil {
		return nil, err
	}

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	return meeting, nil
}

// UpdateStatus transitions a meeting's status. Transitions are forward-only:
// a completed or cancelled meeting never returns to scheduled.
func (s *MeetingService) UpdateStatus(ctx context.Context, meetingID uuid.UUID, status entities.MeetingStatus) (*entities.Meeting, error) {
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidMeetingStatus
	}

	meeting, err := s.GetMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	if !meeting.CanTransitionTo(status) {
		return nil, usecaseErrors.ErrInvalidStatusTransition
	}

	meeting.Status = status
	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting status: %w", err)
	}

	return meeting, nil
}

// DeleteMeeting deletes a meeting
func (s *MeetingService) DeleteMeeting(ctx context.Context, meetingID uuid.UUID) error {
	// Confirm existence first so the caller gets a clean not-found
	if _, err := s.GetMeeting(ctx, meetingID); err != nil {
		return err
	}

	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}
