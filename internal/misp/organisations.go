package misp

import (
	"context"
	"encoding/json"
	"net/http"
)

// OrganisationsService wraps the organisation controllers. Writes go through
// the admin controller, reads through the public one, mirroring MISP's split.
type OrganisationsService struct {
	client *Client
}

// Add creates an organisation.
func (s *OrganisationsService) Add(ctx context.Context, org map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/admin/organisations/add", org)
}

// Update edits an existing organisation.
func (s *OrganisationsService) Update(ctx context.Context, orgID string, org map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/admin/organisations/edit/"+orgID, org)
}

// Delete removes an organisation.
func (s *OrganisationsService) Delete(ctx context.Context, orgID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/admin/organisations/delete/"+orgID, nil)
}

// Get fetches one organisation.
func (s *OrganisationsService) Get(ctx context.Context, orgID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/organisations/view/"+orgID, nil)
}

// List returns the organisation index.
func (s *OrganisationsService) List(ctx context.Context) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/organisations", nil)
}
