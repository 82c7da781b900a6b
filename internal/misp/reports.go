package misp

import (
	"context"
	"encoding/json"
	"net/http"
)

// ReportsService wraps the /event_reports controller.
type ReportsService struct {
	client *Client
}

// Add attaches a report to an event.
func (s *ReportsService) Add(ctx context.Context, eventID string, report map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/event_reports/add/"+eventID, report)
}

// ListForEvent returns all reports attached to an event.
func (s *ReportsService) ListForEvent(ctx context.Context, eventID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/event_reports/index/event_id:"+eventID, nil)
}

// Update edits an existing report.
func (s *ReportsService) Update(ctx context.Context, reportID string, report map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/event_reports/edit/"+reportID, report)
}

// Delete removes a report.
func (s *ReportsService) Delete(ctx context.Context, reportID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/event_reports/delete/"+reportID, nil)
}
