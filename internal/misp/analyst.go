package misp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AnalystDataService wraps the /analyst_data controller, MISP's generic
// annotation mechanism. Every operation is dispatched by a kind discriminator:
// note, opinion or relationship.
type AnalystDataService struct {
	client *Client
}

// Analyst data kinds accepted by the controller.
const (
	AnalystKindNote         = "note"
	AnalystKindOpinion      = "opinion"
	AnalystKindRelationship = "relationship"
)

func validAnalystKind(kind string) error {
	switch kind {
	case AnalystKindNote, AnalystKindOpinion, AnalystKindRelationship:
		return nil
	}
	return fmt.Errorf("unknown analyst data kind %q", kind)
}

// Add creates an annotation of the given kind.
func (s *AnalystDataService) Add(ctx context.Context, kind string, data map[string]any) (json.RawMessage, error) {
	if err := validAnalystKind(kind); err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/analyst_data/add/"+kind, data)
}

// Update edits an existing annotation.
func (s *AnalystDataService) Update(ctx context.Context, kind, id string, data map[string]any) (json.RawMessage, error) {
	if err := validAnalystKind(kind); err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/analyst_data/edit/"+kind+"/"+id, data)
}

// Delete removes an annotation.
func (s *AnalystDataService) Delete(ctx context.Context, kind, id string) (json.RawMessage, error) {
	if err := validAnalystKind(kind); err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/analyst_data/delete/"+kind+"/"+id, nil)
}

// Get fetches one annotation.
func (s *AnalystDataService) Get(ctx context.Context, kind, id string) (json.RawMessage, error) {
	if err := validAnalystKind(kind); err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodGet, "/analyst_data/view/"+kind+"/"+id, nil)
}
