package misp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SearchService wraps the generic restSearch endpoints.
type SearchService struct {
	client *Client
}

// Search runs a restSearch query against one of the searchable controllers.
// The query passes through verbatim.
func (s *SearchService) Search(ctx context.Context, controller string, query map[string]any) (json.RawMessage, error) {
	switch controller {
	case "attributes", "events", "objects":
	default:
		return nil, fmt.Errorf("unsearchable controller %q", controller)
	}
	if query == nil {
		query = map[string]any{}
	}
	return s.client.Do(ctx, http.MethodPost, "/"+controller+"/restSearch", query)
}
