package misp

import (
	"context"
	"encoding/json"
	"net/http"
)

// ObjectsService wraps the /objects controller.
type ObjectsService struct {
	client *Client
}

// Add attaches an object to an event. first_seen/last_seen arrive as epoch
// seconds and are re-embedded as YYYY-MM-DD dates, the form the object
// template layer expects.
func (s *ObjectsService) Add(ctx context.Context, eventID, name, comment string, firstSeen, lastSeen int64, attributes []map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/objects/add/"+eventID, objectPayload(name, comment, firstSeen, lastSeen, attributes))
}

// Update edits an existing object.
func (s *ObjectsService) Update(ctx context.Context, objectID, name, comment string, firstSeen, lastSeen int64, attributes []map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/objects/edit/"+objectID, objectPayload(name, comment, firstSeen, lastSeen, attributes))
}

// Get fetches one object.
func (s *ObjectsService) Get(ctx context.Context, objectID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/objects/view/"+objectID, nil)
}

// Delete removes an object.
func (s *ObjectsService) Delete(ctx context.Context, objectID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/objects/delete/"+objectID, nil)
}

func objectPayload(name, comment string, firstSeen, lastSeen int64, attributes []map[string]any) map[string]any {
	payload := map[string]any{}
	if name != "" {
		payload["name"] = name
	}
	if comment != "" {
		payload["comment"] = comment
	}
	if firstSeen != 0 {
		payload["first_seen"] = epochToDate(firstSeen)
	}
	if lastSeen != 0 {
		payload["last_seen"] = epochToDate(lastSeen)
	}
	if len(attributes) > 0 {
		payload["Attribute"] = attributes
	}
	return payload
}
