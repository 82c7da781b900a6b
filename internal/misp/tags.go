package misp

import (
	"context"
	"encoding/json"
	"net/http"
)

// TagsService wraps the /tags controller. Tag fields pass through verbatim.
type TagsService struct {
	client *Client
}

// Add creates a tag.
func (s *TagsService) Add(ctx context.Context, tag map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/tags/add", tag)
}

// Update edits an existing tag.
func (s *TagsService) Update(ctx context.Context, tagID string, tag map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/tags/edit/"+tagID, tag)
}

// Delete removes a tag.
func (s *TagsService) Delete(ctx context.Context, tagID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/tags/delete/"+tagID, nil)
}

// Get fetches one tag.
func (s *TagsService) Get(ctx context.Context, tagID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/tags/view/"+tagID, nil)
}

// List returns the tag index.
func (s *TagsService) List(ctx context.Context) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/tags", nil)
}
