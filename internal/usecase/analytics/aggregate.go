package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/meettrack-team/meettrack/internal/domain/entities"
)

// Reporting conventions, pinned here and enforced by tests:
//   - percentages round half away from zero (math.Round)
//   - daily buckets are UTC calendar days
//   - weeks run Monday through Sunday in UTC
//   - a zero denominator yields a rate of 0, never an error
//   - rankings tie-break by first-seen order in the input sequence
const (
	dateLabelLayout = "Jan 02"
	trendWeeks      = 8
	topN            = 10
)

// NamedCount is a labeled bucket in a distribution
type NamedCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// RankedName is a ranking entry keyed by client or organization name
type RankedName struct {
	Name     string `json:"name"`
	Meetings int    `json:"meetings"`
}

// RankedLocation is a ranking entry keyed by the raw location string
type RankedLocation struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// AreaCount is a geographic bucket
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// DailyActivity is one calendar day's meeting count
type DailyActivity struct {
	Date     string `json:"date"`
	Meetings int    `json:"meetings"`
}

// WeeklyTrend is one calendar week's counts
type WeeklyTrend struct {
	Week      string `json:"week"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Instant   int    `json:"instant"`
}

// CompletionPoint is one week's completion rate
type CompletionPoint struct {
	Period string `json:"period"`
	Rate   int    `json:"rate"`
}

// Summary is the analytics report over one reporting window. It has no
// identity and is never persisted; every request rebuilds it from whatever
// meetings satisfy the window predicate at that moment.
type Summary struct {
	TotalMeetings            int `json:"total_meetings"`
	CompletedMeetings        int `json:"completed_meetings"`
	InstantMeetings          int `json:"instant_meetings"`
	UniqueClients            int `json:"unique_clients"`
	UniqueOrganizations      int `json:"unique_organizations"`
	MeetingGrowth            int `json:"meeting_growth"`
	CompletionRate           int `json:"completion_rate"`
	InstantMeetingPercentage int `json:"instant_meeting_percentage"`

	StatusDistribution []NamedCount `json:"status_distribution"`
	TypeDistribution   []NamedCount `json:"type_distribution"`

	DailyActivity   []DailyActivity   `json:"daily_activity"`
	WeeklyTrends    []WeeklyTrend     `json:"weekly_trends"`
	CompletionTrend []CompletionPoint `json:"completion_trend"`

	TopClients       []RankedName     `json:"top_clients"`
	TopOrganizations []RankedName     `json:"top_organizations"`
	TopLocations     []RankedLocation `json:"top_locations"`

	LocationTypes          []NamedCount `json:"location_types"`
	GeographicDistribution []AreaCount  `json:"geographic_distribution"`
}

// BuildSummary reduces the current reporting window and the equal-length
// preceding window into a Summary. Pure function: no I/O, inputs are never
// mutated, identical inputs produce identical summaries.
//
// current must hold the meetings created within [now-timeRange days, now],
// previous the meetings of the window immediately before it.
func BuildSummary(current, previous []*entities.Meeting, timeRange int, now time.Time) *Summary {
	s := &Summary{
		TotalMeetings:     len(current),
		CompletedMeetings: countBy(current, func(m *entities.Meeting) bool { return m.Status == entities.MeetingStatusCompleted }),
		InstantMeetings:   countBy(current, func(m *entities.Meeting) bool { return m.IsInstant }),
	}

	s.UniqueClients = countDistinct(current, func(m *entities.Meeting) string { return m.ClientName })
	s.UniqueOrganizations = countDistinct(current, func(m *entities.Meeting) string { return m.OrganizationName })

	s.MeetingGrowth = growthPercent(s.TotalMeetings, len(previous))
	s.CompletionRate = roundPercent(s.CompletedMeetings, s.TotalMeetings)
	s.InstantMeetingPercentage = roundPercent(s.InstantMeetings, s.TotalMeetings)

	s.StatusDistribution = statusDistribution(current)
	s.TypeDistribution = []NamedCount{
		{Name: "Scheduled", Value: s.TotalMeetings - s.InstantMeetings},
		{Name: "Instant", Value: s.InstantMeetings},
	}

	s.DailyActivity = dailyActivity(current, timeRange, now)
	s.WeeklyTrends = weeklyTrends(current, now)
	s.CompletionTrend = completionTrend(s.WeeklyTrends)

	s.TopClients = topNames(current, func(m *entities.Meeting) string { return m.ClientName })
	s.TopOrganizations = topNames(current, func(m *entities.Meeting) string { return m.OrganizationName })
	s.TopLocations = topLocations(current)

	s.LocationTypes = locationTypes(current)
	s.GeographicDistribution = geographicDistribution(current)

	return s
}

// roundPercent computes round(n/d*100) with a zero denominator yielding 0.
// Rounding is half away from zero.
func roundPercent(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}

// growthPercent computes the period-over-period growth percentage, sign
// preserved, 0 when the previous window was empty.
func growthPercent(total, previousTotal int) int {
	if previousTotal == 0 {
		return 0
	}
	return int(math.Round(float64(total-previousTotal) / float64(previousTotal) * 100))
}

func countBy(meetings []*entities.Meeting, match func(*entities.Meeting) bool) int {
	n := 0
	for _, m := range meetings {
		if match(m) {
			n++
		}
	}
	return n
}

func countDistinct(meetings []*entities.Meeting, key func(*entities.Meeting) string) int {
	seen := make(map[string]struct{}, len(meetings))
	for _, m := range meetings {
		seen[key(m)] = struct{}{}
	}
	return len(seen)
}

// statusDistribution groups by status with the label's first letter
// capitalized. Buckets appear in first-encountered order.
func statusDistribution(meetings []*entities.Meeting) []NamedCount {
	counts := make(map[entities.MeetingStatus]int)
	var order []entities.MeetingStatus
	for _, m := range meetings {
		if _, ok := counts[m.Status]; !ok {
			order = append(order, m.Status)
		}
		counts[m.Status]++
	}

	dist := make([]NamedCount, 0, len(order))
	for _, status := range order {
		dist = append(dist, NamedCount{Name: capitalize(string(status)), Value: counts[status]})
	}
	return dist
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// dayStartUTC returns midnight UTC of the calendar day containing t
func dayStartUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStartUTC returns midnight UTC of the Monday of the week containing t
func weekStartUTC(t time.Time) time.Time {
	day := dayStartUTC(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// dailyActivity buckets meetings per UTC calendar day, one entry per day of
// the window in chronological order, zero-count days included.
func dailyActivity(meetings []*entities.Meeting, timeRange int, now time.Time) []DailyActivity {
	perDay := make(map[time.Time]int)
	for _, m := range meetings {
		perDay[dayStartUTC(m.CreatedAt)]++
	}

	end := dayStartUTC(now)
	activity := make([]DailyActivity, 0, timeRange)
	for i := timeRange - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		activity = append(activity, DailyActivity{
			Date:     day.Format(dateLabelLayout),
			Meetings: perDay[day],
		})
	}
	return activity
}

// weeklyTrends covers the 8 calendar weeks ending with the week containing
// now, oldest first, always exactly 8 entries regardless of the window
// length. Their sum therefore only matches TotalMeetings for a 56-day window.
func weeklyTrends(meetings []*entities.Meeting, now time.Time) []WeeklyTrend {
	trends := make([]WeeklyTrend, 0, trendWeeks)
	for i := trendWeeks - 1; i >= 0; i-- {
		weekStart := weekStartUTC(now.AddDate(0, 0, -7*i))
		weekEnd := weekStart.AddDate(0, 0, 7)

		trend := WeeklyTrend{Week: weekStart.Format(dateLabelLayout)}
		for _, m := range meetings {
			created := m.CreatedAt.UTC()
			if created.Before(weekStart) || !created.Before(weekEnd) {
				continue
			}
			trend.Total++
			if m.Status == entities.MeetingStatusCompleted {
				trend.Completed++
			}
			if m.IsInstant {
				trend.Instant++
			}
		}
		trends = append(trends, trend)
	}
	return trends
}

// completionTrend derives one completion-rate point per weekly trend entry
func completionTrend(trends []WeeklyTrend) []CompletionPoint {
	points := make([]CompletionPoint, 0, len(trends))
	for _, w := range trends {
		points = append(points, CompletionPoint{
			Period: w.Week,
			Rate:   roundPercent(w.Completed, w.Total),
		})
	}
	return points
}

// rankedKeys counts occurrences of each key and returns the keys sorted by
// count descending, ties broken by first-seen order, truncated to topN.
// Empty keys are skipped.
func rankedKeys(meetings []*entities.Meeting, key func(*entities.Meeting) string) ([]string, map[string]int) {
	counts := make(map[string]int)
	var order []string
	for _, m := range meetings {
		k := key(m)
		if k == "" {
			continue
		}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order, counts
}

func topNames(meetings []*entities.Meeting, key func(*entities.Meeting) string) []RankedName {
	order, counts := rankedKeys(meetings, key)
	ranked := make([]RankedName, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, RankedName{Name: name, Meetings: counts[name]})
	}
	return ranked
}

func topLocations(meetings []*entities.Meeting) []RankedLocation {
	order, counts := rankedKeys(meetings, func(m *entities.Meeting) string {
		if m.Location == nil {
			return ""
		}
		return *m.Location
	})
	ranked := make([]RankedLocation, 0, len(order))
	for _, loc := range order {
		ranked = append(ranked, RankedLocation{Location: loc, Count: counts[loc]})
	}
	return ranked
}

// locationTypes classifies non-empty locations by case-insensitive substring
// containment. Zero-count buckets are suppressed.
func locationTypes(meetings []*entities.Meeting) []NamedCount {
	buckets := []struct {
		name    string
		keyword string
	}{
		{"Office", "office"},
		{"Client Site", "client"},
		{"Virtual", "virtual"},
	}

	dist := make([]NamedCount, 0, len(buckets)+1)
	other := 0
	counts := make([]int, len(buckets))
	for _, m := range meetings {
		if m.Location == nil || *m.Location == "" {
			continue
		}
		loc := strings.ToLower(*m.Location)
		matched := false
		for i, b := range buckets {
			if strings.Contains(loc, b.keyword) {
				counts[i]++
				matched = true
			}
		}
		if !matched {
			other++
		}
	}

	for i, b := range buckets {
		if counts[i] > 0 {
			dist = append(dist, NamedCount{Name: b.name, Value: counts[i]})
		}
	}
	if other > 0 {
		dist = append(dist, NamedCount{Name: "Other", Value: other})
	}
	return dist
}

// geographicDistribution matches locations against a fixed city list.
// Zero-count buckets are suppressed.
func geographicDistribution(meetings []*entities.Meeting) []AreaCount {
	areas := []struct {
		name    string
		keyword string
	}{
		{"Delhi NCR", "delhi"},
		{"Mumbai", "mumbai"},
		{"Bangalore", "bangalore"},
	}

	dist := make([]AreaCount, 0, len(areas)+1)
	other := 0
	counts := make([]int, len(areas))
	for _, m := range meetings {
		if m.Location == nil || *m.Location == "" {
			continue
		}
		loc := strings.ToLower(*m.Location)
		matched := false
		for i, a := range areas {
			if strings.Contains(loc, a.keyword) {
				counts[i]++
				matched = true
			}
		}
		if !matched {
			other++
		}
	}

	for i, a := range areas {
		if counts[i] > 0 {
			dist = append(dist, AreaCount{Area: a.name, Count: counts[i]})
		}
	}
	if other > 0 {
		dist = append(dist, AreaCount{Area: "Other", Count: other})
	}
	return dist
}
