package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	analyticsUsecase "github.com/meettrack-team/meettrack/internal/usecase/analytics"
)

type fakeAnalyticsService struct {
	summary       *analyticsUsecase.Summary
	err           error
	lastTimeRange int
}

func (f *fakeAnalyticsService) GetSummary(ctx context.Context, timeRange int) (*analyticsUsecase.Summary, error) {
	f.lastTimeRange = timeRange
	return f.summary, f.err
}

func TestGetSummaryHandlerDefaultsTimeRange(t *testing.T) {
	svc := &fakeAnalyticsService{summary: &analyticsUsecase.Summary{}}
	h := NewAnalyticsHandler(svc, zap.NewNop())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetSummary(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastTimeRange != analyticsUsecase.DefaultTimeRange {
		t.Fatalf("expected default time range, got %d", svc.lastTimeRange)
	}
}

func TestGetSummaryHandlerParsesTimeRange(t *testing.T) {
	svc := &fakeAnalyticsService{summary: &analyticsUsecase.Summary{}}
	h := NewAnalyticsHandler(svc, zap.NewNop())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics?timeRange=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetSummary(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if svc.lastTimeRange != 7 {
		t.Fatalf("expected time range 7, got %d", svc.lastTimeRange)
	}
}

func TestGetSummaryHandlerRejectsBadTimeRange(t *testing.T) {
	svc := &fakeAnalyticsService{summary: &analyticsUsecase.Summary{}}
	h := NewAnalyticsHandler(svc, zap.NewNop())
	e := newTestEcho()

	for _, raw := range []string{"abc", "-5", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/analytics?timeRange="+raw, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := h.GetSummary(c); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("timeRange=%s: expected 400, got %d", raw, rec.Code)
		}
	}
}
