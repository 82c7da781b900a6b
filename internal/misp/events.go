package misp

import (
	"context"
	"encoding/json"
	"net/http"
)

// EventsService wraps the /events controller.
type EventsService struct {
	client *Client
}

// Event carries the fields forwarded on event writes. Analysis and threat
// level pass through as received; MISP accepts both numeric and string forms.
type Event struct {
	Info             string `json:"info,omitempty"`
	Analysis         any    `json:"analysis,omitempty"`
	ThreatLevelID    any    `json:"threat_level_id,omitempty"`
	Date             string `json:"date,omitempty"`
	Timestamp        int64  `json:"timestamp,omitempty"`
	PublishTimestamp int64  `json:"publish_timestamp,omitempty"`
}

// Add creates an event, stamping it with the current Tehran-local date and
// epoch timestamps. Derived values are recomputed on every call.
func (s *EventsService) Add(ctx context.Context, info string, analysis, threatLevelID any) (json.RawMessage, error) {
	now := nowEpoch()
	return s.client.Do(ctx, http.MethodPost, "/events/add", Event{
		Info:             info,
		Analysis:         analysis,
		ThreatLevelID:    threatLevelID,
		Date:             today(),
		Timestamp:        now,
		PublishTimestamp: now,
	})
}

// Update edits an existing event, refreshing its date and timestamps.
func (s *EventsService) Update(ctx context.Context, eventID, info string, analysis, threatLevelID any) (json.RawMessage, error) {
	now := nowEpoch()
	return s.client.Do(ctx, http.MethodPost, "/events/edit/"+eventID, Event{
		Info:             info,
		Analysis:         analysis,
		ThreatLevelID:    threatLevelID,
		Date:             today(),
		Timestamp:        now,
		PublishTimestamp: now,
	})
}

// Get fetches one event.
func (s *EventsService) Get(ctx context.Context, eventID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/events/view/"+eventID, nil)
}

// Delete removes an event.
func (s *EventsService) Delete(ctx context.Context, eventID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/events/delete/"+eventID, nil)
}

// List returns the event index.
func (s *EventsService) List(ctx context.Context) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/events/index", nil)
}

// Publish marks an event as published.
func (s *EventsService) Publish(ctx context.Context, eventID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/events/publish/"+eventID, nil)
}

// Unpublish retracts a published event.
func (s *EventsService) Unpublish(ctx context.Context, eventID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/events/unpublish/"+eventID, nil)
}
