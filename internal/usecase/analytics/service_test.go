package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/meettrack-team/meettrack/internal/domain/entities"
	"github.com/meettrack-team/meettrack/internal/domain/repositories"
)

type windowCall struct {
	start time.Time
	end   time.Time
}

type fakeMeetingRepo struct {
	windows  []windowCall
	meetings map[windowCall][]*entities.Meeting
	err      error
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error { return nil }
func (f *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return nil, entities.ErrMeetingNotFound
}
func (f *fakeMeetingRepo) Update(ctx context.Context, m *entities.Meeting) error { return nil }
func (f *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (f *fakeMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]*entities.Meeting, error) {
	if f.err != nil {
		return nil, f.err
	}
	call := windowCall{start: start, end: end}
	f.windows = append(f.windows, call)
	return f.meetings[call], nil
}

func TestGetSummaryFetchesAdjacentWindows(t *testing.T) {
	repo := &fakeMeetingRepo{}
	svc := NewAnalyticsService(repo)
	svc.now = func() time.Time { return fixedNow }

	if _, err := svc.GetSummary(context.Background(), 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.windows) != 2 {
		t.Fatalf("expected 2 window fetches, got %d", len(repo.windows))
	}

	current, previous := repo.windows[0], repo.windows[1]
	if !current.end.Equal(fixedNow) {
		t.Fatalf("current window should end now, got %v", current.end)
	}
	if !current.start.Equal(fixedNow.AddDate(0, 0, -30)) {
		t.Fatalf("current window should start 30 days back, got %v", current.start)
	}
	// Previous window butts up against the current one with equal length
	if !previous.end.Equal(current.start) {
		t.Fatalf("windows not adjacent: previous ends %v, current starts %v", previous.end, current.start)
	}
	if !previous.start.Equal(current.start.AddDate(0, 0, -30)) {
		t.Fatalf("previous window wrong length: %v", previous.start)
	}
}

func TestGetSummaryDefaultsTimeRange(t *testing.T) {
	repo := &fakeMeetingRepo{}
	svc := NewAnalyticsService(repo)
	svc.now = func() time.Time { return fixedNow }

	summary, err := svc.GetSummary(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.DailyActivity) != DefaultTimeRange {
		t.Fatalf("expected %d daily entries, got %d", DefaultTimeRange, len(summary.DailyActivity))
	}
	if got := repo.windows[0].start; !got.Equal(fixedNow.AddDate(0, 0, -DefaultTimeRange)) {
		t.Fatalf("expected default window start, got %v", got)
	}
}

func TestGetSummaryPropagatesFetchError(t *testing.T) {
	repo := &fakeMeetingRepo{err: errors.New("connection refused")}
	svc := NewAnalyticsService(repo)
	svc.now = func() time.Time { return fixedNow }

	if _, err := svc.GetSummary(context.Background(), 30); err == nil {
		t.Fatal("expected error when repository fails")
	}
}
