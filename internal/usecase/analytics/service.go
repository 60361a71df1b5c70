package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/meettrack-team/meettrack/internal/domain/repositories"
)

// DefaultTimeRange is the reporting window length in days when the caller
// does not specify one
const DefaultTimeRange = 30

// Service defines the interface for the analytics use case
type Service interface {
	// GetSummary builds the analytics summary for the window of timeRange
	// days ending now
	GetSummary(ctx context.Context, timeRange int) (*Summary, error)
}

// AnalyticsService fetches the reporting windows and reduces them with the
// pure aggregation engine. It holds no state across requests; every call
// fetches and reduces from scratch.
type AnalyticsService struct {
	meetingRepo repositories.MeetingRepository
	now         func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(meetingRepo repositories.MeetingRepository) *AnalyticsService {
	return &AnalyticsService{
		meetingRepo: meetingRepo,
		now:         time.Now,
	}
}

// GetSummary builds the analytics summary for the requested window.
// The current window is [now-timeRange days, now]; the comparison window is
// the equal-length period immediately before it. A fetch failure propagates
// unchanged; there is no retry and no partial result.
func (s *AnalyticsService) GetSummary(ctx context.Context, timeRange int) (*Summary, error) {
	if timeRange <= 0 {
		timeRange = DefaultTimeRange
	}

	now := s.now().UTC()
	windowStart := now.AddDate(0, 0, -timeRange)
	previousStart := windowStart.AddDate(0, 0, -timeRange)

	current, err := s.meetingRepo.FindCreatedBetween(ctx, windowStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current window: %w", err)
	}

	previous, err := s.meetingRepo.FindCreatedBetween(ctx, previousStart, windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous window: %w", err)
	}

	return BuildSummary(current, previous, timeRange, now), nil
}
