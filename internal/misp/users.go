package misp

import (
	"context"
	"encoding/json"
	"net/http"
)

// UsersService wraps the /admin/users controller. User fields pass through
// verbatim; the API key decides what MISP actually permits.
type UsersService struct {
	client *Client
}

// Add creates a user.
func (s *UsersService) Add(ctx context.Context, user map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/admin/users/add", user)
}

// Update edits an existing user.
func (s *UsersService) Update(ctx context.Context, userID string, user map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/admin/users/edit/"+userID, user)
}

// Delete removes a user.
func (s *UsersService) Delete(ctx context.Context, userID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/admin/users/delete/"+userID, nil)
}

// Get fetches one user.
func (s *UsersService) Get(ctx context.Context, userID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/admin/users/view/"+userID, nil)
}

// List returns the user index.
func (s *UsersService) List(ctx context.Context) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/admin/users", nil)
}
