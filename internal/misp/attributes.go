package misp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AttributesService wraps the /attributes controller.
type AttributesService struct {
	client *Client
}

// Attribute carries the fields forwarded on attribute writes. FirstSeen and
// LastSeen are epoch seconds; callers supply them as YYYY-MM-DD strings.
type Attribute struct {
	EventID            string `json:"event_id,omitempty"`
	Value              string `json:"value,omitempty"`
	Category           string `json:"category,omitempty"`
	Type               string `json:"type,omitempty"`
	FirstSeen          int64  `json:"first_seen,omitempty"`
	LastSeen           int64  `json:"last_seen,omitempty"`
	DisableCorrelation bool   `json:"disable_correlation,omitempty"`
	Timestamp          int64  `json:"timestamp,omitempty"`
}

// Add attaches an attribute to an event. first_seen/last_seen arrive as
// YYYY-MM-DD and are converted to epoch seconds at midnight UTC.
func (s *AttributesService) Add(ctx context.Context, eventID, value, category, attrType, firstSeen, lastSeen string, disableCorrelation bool) (json.RawMessage, error) {
	attr, err := buildAttribute(value, category, attrType, firstSeen, lastSeen, disableCorrelation)
	if err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/attributes/add/"+eventID, attr)
}

// Update edits an existing attribute.
func (s *AttributesService) Update(ctx context.Context, attributeID, value, category, attrType, firstSeen, lastSeen string, disableCorrelation bool) (json.RawMessage, error) {
	attr, err := buildAttribute(value, category, attrType, firstSeen, lastSeen, disableCorrelation)
	if err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/attributes/edit/"+attributeID, attr)
}

// Delete removes an attribute.
func (s *AttributesService) Delete(ctx context.Context, attributeID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/attributes/delete/"+attributeID, nil)
}

// Get fetches one attribute.
func (s *AttributesService) Get(ctx context.Context, attributeID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/attributes/view/"+attributeID, nil)
}

// List returns the attribute index.
func (s *AttributesService) List(ctx context.Context) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/attributes/index", nil)
}

func buildAttribute(value, category, attrType, firstSeen, lastSeen string, disableCorrelation bool) (Attribute, error) {
	attr := Attribute{
		Value:              value,
		Category:           category,
		Type:               attrType,
		DisableCorrelation: disableCorrelation,
		Timestamp:          nowEpoch(),
	}

	if firstSeen != "" {
		fs, err := dateToEpoch(firstSeen)
		if err != nil {
			return Attribute{}, fmt.Errorf("invalid first_seen %q: %w", firstSeen, err)
		}
		attr.FirstSeen = fs
	}
	if lastSeen != "" {
		ls, err := dateToEpoch(lastSeen)
		if err != nil {
			return Attribute{}, fmt.Errorf("invalid last_seen %q: %w", lastSeen, err)
		}
		attr.LastSeen = ls
	}

	return attr, nil
}
