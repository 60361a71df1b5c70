package meeting

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meettrack-team/meettrack/internal/domain/entities"
	"github.com/meettrack-team/meettrack/internal/domain/repositories"
	usecaseErrors "github.com/meettrack-team/meettrack/internal/usecase/errors"
)

// memoryMeetingRepo is an in-memory MeetingRepository that also counts
// writes so tests can assert that failed validation never touches the store
type memoryMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
	creates  int
	updates  int
	deletes  int
}

func newMemoryMeetingRepo() *memoryMeetingRepo {
	return &memoryMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (r *memoryMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error {
	r.creates++
	cp := *m
	r.meetings[m.ID] = &cp
	return nil
}

func (r *memoryMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memoryMeetingRepo) Update(ctx context.Context, m *entities.Meeting) error {
	r.updates++
	cp := *m
	r.meetings[m.ID] = &cp
	return nil
}

func (r *memoryMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deletes++
	delete(r.meetings, id)
	return nil
}

func (r *memoryMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	out := make([]*entities.Meeting, 0, len(r.meetings))
	for _, m := range r.meetings {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryMeetingRepo) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]*entities.Meeting, error) {
	return nil, nil
}

func newTestService(repo *memoryMeetingRepo, now time.Time) *MeetingService {
	svc := NewMeetingService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func validInput() CreateMeetingInput {
	return CreateMeetingInput{
		Title:            "Contract renewal",
		ClientName:       "Asha Verma",
		OrganizationName: "Acme Industries",
		MobileNumber:     "9876543210",
	}
}

func TestCreateInstantMeetingDefaults(t *testing.T) {
	repo := newMemoryMeetingRepo()
	now := time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	input := validInput()
	input.IsInstant = true

	m, err := svc.CreateMeeting(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !m.IsInstant {
		t.Fatal("expected instant meeting")
	}
	if m.Status != entities.MeetingStatusCompleted {
		t.Fatalf("instant meetings must be created completed, got %s", m.Status)
	}
	if !m.MeetingDate.Equal(now) {
		t.Fatalf("instant meeting date should default to now, got %v", m.MeetingDate)
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly one store write, got %d", repo.creates)
	}
}

func TestCreateInstantMeetingExplicitDate(t *testing.T) {
	repo := newMemoryMeetingRepo()
	now := time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	explicit := time.Date(2024, 6, 13, 18, 30, 0, 0, time.UTC)
	input := validInput()
	input.IsInstant = true
	input.MeetingDate = &explicit

	m, err := svc.CreateMeeting(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.MeetingDate.Equal(explicit) {
		t.Fatalf("expected explicit meeting date, got %v", m.MeetingDate)
	}
}

func TestCreateScheduledMeetingParsesDateTime(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	input := validInput()
	input.Date = "2024-07-01"
	input.Time = "14:30"

	m, err := svc.CreateMeeting(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 7, 1, 14, 30, 0, 0, time.UTC)
	if !m.MeetingDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, m.MeetingDate)
	}
	if m.Status != entities.MeetingStatusScheduled {
		t.Fatalf("expected scheduled status, got %s", m.Status)
	}
	if m.IsInstant {
		t.Fatal("scheduled meeting must not be instant")
	}
}

func TestCreateScheduledMeetingRequiresDateAndTime(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	cases := []struct {
		name string
		date string
		time string
	}{
		{"missing both", "", ""},
		{"missing time", "2024-07-01", ""},
		{"missing date", "", "14:30"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			input.Date = tc.date
			input.Time = tc.time

			if _, err := svc.CreateMeeting(context.Background(), input); err != usecaseErrors.ErrDateTimeRequired {
				t.Fatalf("expected ErrDateTimeRequired, got %v", err)
			}
		})
	}

	// Validation failures must never reach the store
	if repo.creates != 0 {
		t.Fatalf("expected no store writes, got %d", repo.creates)
	}
}

func TestCreateMeetingRequiresCoreFields(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	input := validInput()
	input.ClientName = ""

	if _, err := svc.CreateMeeting(context.Background(), input); err != usecaseErrors.ErrMissingRequiredFields {
		t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("expected no store writes, got %d", repo.creates)
	}
}

func TestCreateMeetingCaptureFieldsOnlyForInstant(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	lat, lng := 28.61, 77.21
	selfie := "selfies/abc.jpg"
	reminder := 30

	input := validInput()
	input.Date = "2024-07-01"
	input.Time = "09:00"
	input.Latitude = &lat
	input.Longitude = &lng
	input.SelfieURL = &selfie
	input.ReminderMinutes = &reminder

	m, err := svc.CreateMeeting(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Latitude != nil || m.Longitude != nil || m.SelfieURL != nil {
		t.Fatal("scheduled meetings must not carry capture fields")
	}
	if m.ReminderMinutes == nil || *m.ReminderMinutes != 30 {
		t.Fatal("scheduled meetings should keep the reminder")
	}

	input = validInput()
	input.IsInstant = true
	input.Latitude = &lat
	input.Longitude = &lng
	input.SelfieURL = &selfie
	input.ReminderMinutes = &reminder

	m, err = svc.CreateMeeting(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Latitude == nil || m.Longitude == nil || m.SelfieURL == nil {
		t.Fatal("instant meetings should keep capture fields")
	}
	if m.ReminderMinutes != nil {
		t.Fatal("instant meetings must not carry a reminder")
	}
}

func TestGetMeetingNotFound(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	if _, err := svc.GetMeeting(context.Background(), uuid.New()); err != usecaseErrors.ErrMeetingNotFound {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestUpdateMeetingPartial(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	created, err := svc.CreateMeeting(context.Background(), func() CreateMeetingInput {
		in := validInput()
		in.Date = "2024-07-01"
		in.Time = "09:00"
		return in
	}())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	newTitle := "Renewal follow-up"
	desc := "Bring the revised quote"
	updated, err := svc.UpdateMeeting(context.Background(), created.ID, UpdateMeetingInput{
		Title:       &newTitle,
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Title != newTitle {
		t.Fatalf("title not updated: %s", updated.Title)
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Fatal("description not updated")
	}
	// Untouched fields survive
	if updated.ClientName != created.ClientName {
		t.Fatalf("client name changed unexpectedly: %s", updated.ClientName)
	}
	if !updated.MeetingDate.Equal(created.MeetingDate) {
		t.Fatalf("meeting date changed unexpectedly: %v", updated.MeetingDate)
	}
}

func TestUpdateMeetingIgnoresEmptyRequiredFields(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	created, err := svc.CreateMeeting(context.Background(), func() CreateMeetingInput {
		in := validInput()
		in.IsInstant = true
		return in
	}())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	empty := ""
	updated, err := svc.UpdateMeeting(context.Background(), created.ID, UpdateMeetingInput{
		Title: &empty,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != created.Title {
		t.Fatalf("empty title should be ignored, got %q", updated.Title)
	}
}

func TestUpdateStatusForwardOnly(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	created, err := svc.CreateMeeting(context.Background(), func() CreateMeetingInput {
		in := validInput()
		in.Date = "2024-07-01"
		in.Time = "09:00"
		return in
	}())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	completed, err := svc.UpdateStatus(context.Background(), created.ID, entities.MeetingStatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completed.Status != entities.MeetingStatusCompleted {
		t.Fatalf("expected completed, got %s", completed.Status)
	}

	// Completed meetings never return to scheduled
	if _, err := svc.UpdateStatus(context.Background(), created.ID, entities.MeetingStatusScheduled); err != usecaseErrors.ErrInvalidStatusTransition {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), created.ID, entities.MeetingStatusCancelled); err != usecaseErrors.ErrInvalidStatusTransition {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), entities.MeetingStatus("archived")); err != usecaseErrors.ErrInvalidMeetingStatus {
		t.Fatalf("expected ErrInvalidMeetingStatus, got %v", err)
	}
}

func TestDeleteMeeting(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	created, err := svc.CreateMeeting(context.Background(), func() CreateMeetingInput {
		in := validInput()
		in.IsInstant = true
		return in
	}())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := svc.DeleteMeeting(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetMeeting(context.Background(), created.ID); err != usecaseErrors.ErrMeetingNotFound {
		t.Fatalf("expected ErrMeetingNotFound after delete, got %v", err)
	}

	// Deleting a missing meeting reports not found without touching the store
	if err := svc.DeleteMeeting(context.Background(), uuid.New()); err != usecaseErrors.ErrMeetingNotFound {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
	if repo.deletes != 1 {
		t.Fatalf("expected a single delete, got %d", repo.deletes)
	}
}

func TestListMeetingsValidatesType(t *testing.T) {
	repo := newMemoryMeetingRepo()
	svc := newTestService(repo, time.Now().UTC())

	if _, err := svc.ListMeetings(context.Background(), repositories.MeetingFilters{Type: "yesterday"}); err != usecaseErrors.ErrInvalidListType {
		t.Fatalf("expected ErrInvalidListType, got %v", err)
	}

	// Empty type falls back to all
	if _, err := svc.ListMeetings(context.Background(), repositories.MeetingFilters{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
