package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/meettrack-team/meettrack/internal/domain/entities"
)

// fixedNow is a Friday so week bucketing around it is predictable:
// the containing week starts Monday 2024-06-10.
var fixedNow = time.Date(2024, 6, 14, 15, 30, 0, 0, time.UTC)

type meetingSpec struct {
	client    string
	org       string
	location  string
	status    entities.MeetingStatus
	instant   bool
	createdAt time.Time
}

func buildMeeting(spec meetingSpec) *entities.Meeting {
	m := &entities.Meeting{
		ID:               uuid.New(),
		Title:            "Quarterly review",
		ClientName:       spec.client,
		OrganizationName: spec.org,
		MobileNumber:     "9876543210",
		MeetingDate:      spec.createdAt,
		IsInstant:        spec.instant,
		Status:           spec.status,
		CreatedAt:        spec.createdAt,
		UpdatedAt:        spec.createdAt,
	}
	if spec.location != "" {
		loc := spec.location
		m.Location = &loc
	}
	return m
}

func TestBuildSummaryCounts(t *testing.T) {
	day := fixedNow.AddDate(0, 0, -1)
	current := []*entities.Meeting{
		buildMeeting(meetingSpec{client: "Asha", org: "Acme", status: entities.MeetingStatusCompleted, createdAt: day}),
		buildMeeting(meetingSpec{client: "Ravi", org: "Acme", status: entities.MeetingStatusCompleted, instant: true, createdAt: day}),
		buildMeeting(meetingSpec{client: "Asha", org: "Globex", status: entities.MeetingStatusScheduled, createdAt: day}),
	}

	s := BuildSummary(current, nil, 30, fixedNow)

	if s.TotalMeetings != 3 {
		t.Fatalf("expected 3 total meetings, got %d", s.TotalMeetings)
	}
	if s.CompletedMeetings != 2 {
		t.Fatalf("expected 2 completed meetings, got %d", s.CompletedMeetings)
	}
	if s.InstantMeetings != 1 {
		t.Fatalf("expected 1 instant meeting, got %d", s.InstantMeetings)
	}
	if s.UniqueClients != 2 {
		t.Fatalf("expected 2 unique clients, got %d", s.UniqueClients)
	}
	if s.UniqueOrganizations != 2 {
		t.Fatalf("expected 2 unique organizations, got %d", s.UniqueOrganizations)
	}
	if s.CompletionRate != 67 {
		t.Fatalf("expected completion rate 67, got %d", s.CompletionRate)
	}
	if s.InstantMeetingPercentage != 33 {
		t.Fatalf("expected instant percentage 33, got %d", s.InstantMeetingPercentage)
	}
}

func TestBuildSummaryTypeDistributionAlwaysHasBothBuckets(t *testing.T) {
	day := fixedNow.AddDate(0, 0, -2)
	current := []*entities.Meeting{
		buildMeeting(meetingSpec{client: "Asha", org: "Acme", status: entities.MeetingStatusCompleted, createdAt: day}),
		buildMeeting(meetingSpec{client: "Ravi", org: "Acme", status: entities.MeetingStatusCompleted, instant: true, createdAt: day}),
		buildMeeting(meetingSpec{client: "Maya", org: "Globex", status: entities.MeetingStatusScheduled, createdAt: day}),
	}

	s := BuildSummary(current, nil, 30, fixedNow)

	want := []NamedCount{{Name: "Scheduled", Value: 2}, {Name: "Instant", Value: 1}}
	if !reflect.DeepEqual(s.TypeDistribution, want) {
		t.Fatalf("unexpected type distribution: %+v", s.TypeDistribution)
	}

	// Both buckets stay present even with no meetings at all
	empty := BuildSummary(nil, nil, 30, fixedNow)
	want = []NamedCount{{Name: "Scheduled", Value: 0}, {Name: "Instant", Value: 0}}
	if !reflect.DeepEqual(empty.TypeDistribution, want) {
		t.Fatalf("unexpected empty type distribution: %+v", empty.TypeDistribution)
	}
}

func TestBuildSummaryEmptyWindow(t *testing.T) {
	s := BuildSummary(nil, nil, 14, fixedNow)

	if s.TotalMeetings != 0 || s.CompletedMeetings != 0 || s.InstantMeetings != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
	if s.CompletionRate != 0 || s.InstantMeetingPercentage != 0 || s.MeetingGrowth != 0 {
		t.Fatalf("expected zero rates on empty input, got %+v", s)
	}
	if len(s.StatusDistribution) != 0 {
		t.Fatalf("expected empty status distribution, got %+v", s.StatusDistribution)
	}
	if len(s.TopClients) != 0 || len(s.TopOrganizations) != 0 || len(s.TopLocations) != 0 {
		t.Fatalf("expected empty rankings, got %+v", s)
	}
	if len(s.LocationTypes) != 0 || len(s.GeographicDistribution) != 0 {
		t.Fatalf("expected empty location buckets, got %+v", s)
	}
	if len(s.DailyActivity) != 14 {
		t.Fatalf("expected 14 daily entries, got %d", len(s.DailyActivity))
	}
	if len(s.WeeklyTrends) != trendWeeks || len(s.CompletionTrend) != trendWeeks {
		t.Fatalf("expected %d weekly entries, got %d and %d", trendWeeks, len(s.WeeklyTrends), len(s.CompletionTrend))
	}
}

func TestBuildSummaryGrowth(t *testing.T) {
	day := fixedNow.AddDate(0, 0, -1)
	prevDay := fixedNow.AddDate(0, 0, -40)

	mk := func(n int, at time.Time) []*entities.Meeting {
		out := make([]*entities.Meeting, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, buildMeeting(meetingSpec{client: "Asha", org: "Acme", status: entities.MeetingStatusScheduled, createdAt: at}))
		}
		return out
	}

	s := BuildSummary(mk(6, day), mk(4, prevDay), 30, fixedNow)
	if s.MeetingGrowth != 50 {
		t.Fatalf("expected 50%% growth, got %d", s.MeetingGrowth)
	}

	s = BuildSummary(mk(2, day), mk(4, prevDay), 30, fixedNow)
	if s.MeetingGrowth != -50 {
		t.Fatalf("expected -50%% growth, got %d", s.MeetingGrowth)
	}

	// Empty previous window reports 0 growth rather than dividing by zero
	s = BuildSummary(mk(5, day), nil, 30, fixedNow)
	if s.MeetingGrowth != 0 {
		t.Fatalf("expected 0 growth with empty previous window, got %d", s.MeetingGrowth)
	}
}

func TestRoundPercentHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		n, d, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},  // 12.5 rounds up
		{1, 40, 3},  // 2.5 rounds up
		{3, 4, 75},
		{1, 1, 100},
	}
	for _, tc := range cases {
		if got := roundPercent(tc.n, tc.d); got != tc.want {
			t.Errorf("roundPercent(%d, %d) = %d, want %d", tc.n, tc.d, got, tc.want)
		}
	}
}

func TestDailyActivityWindow(t *testing.T) {
	current := []*entities.Meeting{
		buildMeeting(meetingSpec{client: "Asha", org: "Acme", status: entities.MeetingStatusScheduled, createdAt: fixedNow.AddDate(0, 0, -2)}),
		buildMeeting(meetingSpec{client: "Ravi", org: "Acme", status: entities.MeetingStatusScheduled, createdAt: fixedNow.AddDate(0, 0, -2)}),
		buildMeeting(meetingSpec{client: "Maya", org: "Acme", status: entities.MeetingStatusScheduled, createdAt: fixedNow}),
	}

	s := BuildSummary(current, nil, 7, fixedNow)

	if len(s.DailyActivity) != 7 {
		t.Fatalf("expected 7 daily entries, got %d", len(s.DailyActivity))
	}

	// Oldest first, last entry is today
	if s.DailyActivity[6].Date != fixedNow.Format(dateLabelLayout) {
		t.Fatalf("expected last entry to be today, got %s", s.DailyActivity[6].Date)
	}
	if s.DailyActivity[6].Meetings != 1 {
		t.Fatalf("expected 1 meeting today, got %d", s.DailyActivity[6].Meetings)
	}
	if s.DailyActivity[4].Meetings != 2 {
		t.Fatalf("expected 2 meetings two days ago, got %d", s.DailyActivity[4].Meetings)
	}

	total := 0
	for _, d := range s.DailyActivity {
		total += d.Meetings
	}
	if total != 3 {
		t.Fatalf("expected daily counts to sum to 3, got %d", total)
	}
}

func TestWeeklyTrendsAlwaysEightWeeks(t *testing.T) {
	// One meeting in the current week, one three weeks back
	current := []*entities.Meeting{
		buildMeeting(meetingSpec{client: "Asha", org: "Acme", status: entities.MeetingStatusCompleted, instant: true, createdAt: fixedNow.AddDate(0, 0, -1)}),
		buildMeeting(meetingSpec{client: "Ravi", org: "Acme", status: entities.MeetingStatusScheduled, createdAt: fixedNow.AddDate(0, 0, -21)}),
	}

	for _, timeRange := range []int{7, 30, 90} {
		s := BuildSummary(current, nil, timeRange, fixedNow)
		if len(s.WeeklyTrends) != trendWeeks {
			t.Fatalf("timeRange=%d: expected %d weeks, got %d", timeRange, trendWeeks, len(s.WeeklyTrends))
		}
	}

	s := BuildSummary(current, nil, 30, fixedNow)

	last := s.WeeklyTrends[trendWeeks-1]
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	if last.Week != monday.Format(dateLabelLayout) {
		t.Fatalf("expected last week labeled %s, got %s", monday.Format(dateLabelLayout), last.Week)
	}
	if last.Total != 1 || last.Completed != 1 || last.Instant != 1 {
		t.Fatalf("unexpected last week counts: %+v", last)
	}

	// Completion trend mirrors the weekly buckets
	if len(s.CompletionTrend) != trendWeeks {
		t.Fatalf("expected %d completion points, got %d", trendWeeks, len(s.CompletionTrend))
	}
	lastPoint := s.CompletionTrend[trendWeeks-1]
	if lastPoint.Period != last.Week || lastPoint.Rate != 100 {
		t.Fatalf("unexpected last completion point: %+v", lastPoint)
	}
}

func TestTopClientsRankingAndTruncation(t *testing.T) {
	day := fixedNow.AddDate(0, 0, -1)
	var current []*entities.Meeting
	// 12 clients; client-a ends with 3 meetings, client-b with 2, the rest 1
	for i := 0; i < 12; i++ {
		name := "client-" + string(rune('a'+i))
		current = append(current, buildMeeting(meetingSpec{client: name, org: "Acme", status: entities.MeetingStatusScheduled, createdAt: day}))
	}
	current = append(current,
		buildMeeting(meetingSpec{client: "client-a", org: "Acme", status: entities.MeetingStatusScheduled, createdAt: day}),
		buildMeeting(meetingSpec{client: "client-a", org: "Acme", status: entities.MeetingStatusScheduled, createdAt: day}),
		buildMeeting(meetingSpec{client: "client-b", org: "Acme", status: entities.MeetingStatusScheduled, createdAt: day}),
	)

	s := BuildSummary(current, nil, 30, fixedNow)

	if len(s.TopClients) != 10 {
		t.Fatalf("expected top clients truncated to 10, got %d", len(s.TopClients))
	}
	if s.TopClients[0].Name != "client-a" || s.TopClients[0].Meetings != 3 {
		t.Fatalf("unexpected first entry: %+v", s.TopClients[0])
	}
	if s.TopClients[1].Name != "client-b" || s.TopClients[1].Meetings != 2 {
		t.Fatalf("unexpected second entry: %+v", s.TopClients[1])
	}
	for i := 1; i < len(s.TopClients); i++ {
		if s.TopClients[i].Meetings > s.TopClients[i-1].Meetings {
			t.Fatalf("ranking not non-increasing at %d: %+v", i, s.TopClients)
		}
	}
	// Equal counts keep first-seen order
	if s.TopClients[2].Name != "client-c" {
		t.Fatalf("expected tie-break by first appearance, got %+v", s.TopClients[2])
	}
}

func TestLocationBuckets(t *testing.T) {
	day := fixedNow.AddDate(0, 0, -1)
	current := []*entities.Meeting{
		buildMeeting(meetingSpec{client: "a", org: "o", location: "Acme Head Office, Delhi", status: entities.MeetingStatusScheduled, createdAt: day}),
		buildMeeting(meetingSpec{client: "b", org: "o", location: "Client warehouse, Mumbai", status: entities.MeetingStatusScheduled, createdAt: day}),
		buildMeeting(meetingSpec{client: "c", org: "o", location: "Virtual (Zoom)", status: entities.MeetingStatusScheduled, createdAt: day}),
		buildMeeting(meetingSpec{client: "d", org: "o", location: "Roadside dhaba", status: entities.MeetingStatusScheduled, createdAt: day}),
		buildMeeting(meetingSpec{client: "e", org: "o", status: entities.MeetingStatusScheduled, createdAt: day}),
	}

	s := BuildSummary(current, nil, 30, fixedNow)

	wantTypes := []NamedCount{
		{Name: "Office", Value: 1},
		{Name: "Client Site", Value: 1},
		{Name: "Virtual", Value: 1},
		{Name: "Other", Value: 1},
	}
	if !reflect.DeepEqual(s.LocationTypes, wantTypes) {
		t.Fatalf("unexpected location types: %+v", s.LocationTypes)
	}

	wantAreas := []AreaCount{
		{Area: "Delhi NCR", Count: 1},
		{Area: "Mumbai", Count: 1},
	}
	// Two non-matching locations fall into Other; the nil location is skipped
	wantAreas = append(wantAreas, AreaCount{Area: "Other", Count: 2})
	if !reflect.DeepEqual(s.GeographicDistribution, wantAreas) {
		t.Fatalf("unexpected geographic distribution: %+v", s.GeographicDistribution)
	}

	// Zero-count buckets never appear
	onlyVirtual := []*entities.Meeting{
		buildMeeting(meetingSpec{client: "a", org: "o", location: "virtual call", status: entities.MeetingStatusScheduled, createdAt: day}),
	}
	s = BuildSummary(onlyVirtual, nil, 30, fixedNow)
	if len(s.LocationTypes) != 1 || s.LocationTypes[0].Name != "Virtual" {
		t.Fatalf("expected only Virtual bucket, got %+v", s.LocationTypes)
	}
}

func TestStatusDistributionCapitalization(t *testing.T) {
	day := fixedNow.AddDate(0, 0, -1)
	current := []*entities.Meeting{
		buildMeeting(meetingSpec{client: "a", org: "o", status: entities.MeetingStatusScheduled, createdAt: day}),
		buildMeeting(meetingSpec{client: "b", org: "o", status: entities.MeetingStatusCompleted, createdAt: day}),
		buildMeeting(meetingSpec{client: "c", org: "o", status: entities.MeetingStatusCompleted, createdAt: day}),
		buildMeeting(meetingSpec{client: "d", org: "o", status: entities.MeetingStatusCancelled, createdAt: day}),
	}

	s := BuildSummary(current, nil, 30, fixedNow)

	want := []NamedCount{
		{Name: "Scheduled", Value: 1},
		{Name: "Completed", Value: 2},
		{Name: "Cancelled", Value: 1},
	}
	if !reflect.DeepEqual(s.StatusDistribution, want) {
		t.Fatalf("unexpected status distribution: %+v", s.StatusDistribution)
	}
}

func TestBuildSummaryIsIdempotent(t *testing.T) {
	day := fixedNow.AddDate(0, 0, -3)
	current := []*entities.Meeting{
		buildMeeting(meetingSpec{client: "Asha", org: "Acme", location: "Delhi office", status: entities.MeetingStatusCompleted, instant: true, createdAt: day}),
		buildMeeting(meetingSpec{client: "Ravi", org: "Globex", location: "virtual", status: entities.MeetingStatusScheduled, createdAt: day}),
	}
	previous := []*entities.Meeting{
		buildMeeting(meetingSpec{client: "Maya", org: "Acme", status: entities.MeetingStatusCompleted, createdAt: fixedNow.AddDate(0, 0, -45)}),
	}

	first := BuildSummary(current, previous, 30, fixedNow)
	second := BuildSummary(current, previous, 30, fixedNow)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("summaries differ across identical invocations:\n%+v\n%+v", first, second)
	}
}
