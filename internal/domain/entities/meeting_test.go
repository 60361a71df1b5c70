package entities

import (
	"testing"
	"time"
)

func TestNewInstantMeetingIsCompleted(t *testing.T) {
	m := NewInstantMeeting("Site visit", "Asha", "Acme", "9876543210")

	if !m.IsInstant {
		t.Fatal("expected instant meeting")
	}
	if m.Status != MeetingStatusCompleted {
		t.Fatalf("expected completed status, got %s", m.Status)
	}
	if m.MeetingDate.IsZero() {
		t.Fatal("expected meeting date to be set")
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid meeting, got %v", err)
	}
}

func TestNewScheduledMeeting(t *testing.T) {
	date := time.Date(2024, 7, 1, 14, 30, 0, 0, time.UTC)
	m := NewScheduledMeeting("Demo", "Ravi", "Globex", "9876543210", date)

	if m.IsInstant {
		t.Fatal("scheduled meeting must not be instant")
	}
	if m.Status != MeetingStatusScheduled {
		t.Fatalf("expected scheduled status, got %s", m.Status)
	}
	if !m.MeetingDate.Equal(date) {
		t.Fatalf("expected %v, got %v", date, m.MeetingDate)
	}
}

func TestMeetingValidate(t *testing.T) {
	base := func() *Meeting {
		return NewScheduledMeeting("Demo", "Ravi", "Globex", "9876543210", time.Now().UTC())
	}

	cases := []struct {
		name   string
		mutate func(*Meeting)
		want   error
	}{
		{"empty title", func(m *Meeting) { m.Title = "" }, ErrInvalidTitle},
		{"empty client", func(m *Meeting) { m.ClientName = "" }, ErrInvalidClientName},
		{"empty organization", func(m *Meeting) { m.OrganizationName = "" }, ErrInvalidOrganizationName},
		{"empty mobile", func(m *Meeting) { m.MobileNumber = "" }, ErrInvalidMobileNumber},
		{"zero date", func(m *Meeting) { m.MeetingDate = time.Time{} }, ErrInvalidMeetingDate},
		{"unknown status", func(m *Meeting) { m.Status = "archived" }, ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := base()
			tc.mutate(m)
			if err := m.Validate(); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	scheduled := NewScheduledMeeting("Demo", "Ravi", "Globex", "9876543210", time.Now().UTC())

	if !scheduled.CanTransitionTo(MeetingStatusCompleted) {
		t.Fatal("scheduled should transition to completed")
	}
	if !scheduled.CanTransitionTo(MeetingStatusCancelled) {
		t.Fatal("scheduled should transition to cancelled")
	}
	if scheduled.CanTransitionTo(MeetingStatusScheduled) {
		t.Fatal("self-transition should be rejected")
	}
	if scheduled.CanTransitionTo("archived") {
		t.Fatal("unknown status should be rejected")
	}

	scheduled.Complete()
	if scheduled.CanTransitionTo(MeetingStatusScheduled) || scheduled.CanTransitionTo(MeetingStatusCancelled) {
		t.Fatal("completed meetings must not transition")
	}
}

func TestIsUpcoming(t *testing.T) {
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)

	future := NewScheduledMeeting("Demo", "Ravi", "Globex", "9876543210", now.Add(2*time.Hour))
	if !future.IsUpcoming(now) {
		t.Fatal("future scheduled meeting should be upcoming")
	}

	past := NewScheduledMeeting("Demo", "Ravi", "Globex", "9876543210", now.Add(-2*time.Hour))
	if past.IsUpcoming(now) {
		t.Fatal("past meeting should not be upcoming")
	}

	cancelled := NewScheduledMeeting("Demo", "Ravi", "Globex", "9876543210", now.Add(2*time.Hour))
	cancelled.Cancel()
	if cancelled.IsUpcoming(now) {
		t.Fatal("cancelled meeting should not be upcoming")
	}
}
