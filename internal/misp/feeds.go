package misp

import (
	"context"
	"encoding/json"
	"net/http"
)

// FeedsService wraps the /feeds controller. Feed fields pass through verbatim.
type FeedsService struct {
	client *Client
}

// Add registers a feed.
func (s *FeedsService) Add(ctx context.Context, feed map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/feeds/add", feed)
}

// Update edits an existing feed.
func (s *FeedsService) Update(ctx context.Context, feedID string, feed map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/feeds/edit/"+feedID, feed)
}

// Delete removes a feed.
func (s *FeedsService) Delete(ctx context.Context, feedID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/feeds/delete/"+feedID, nil)
}

// Get fetches one feed.
func (s *FeedsService) Get(ctx context.Context, feedID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/feeds/view/"+feedID, nil)
}

// List returns the feed index.
func (s *FeedsService) List(ctx context.Context) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/feeds", nil)
}
