package misp

import (
	"context"
	"encoding/json"
	"net/http"
)

// ProposalsService wraps the /shadow_attributes controller. A proposal is a
// suggested attribute change awaiting acceptance by the event owner.
type ProposalsService struct {
	client *Client
}

// Add proposes an attribute on an event.
func (s *ProposalsService) Add(ctx context.Context, eventID string, proposal map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/shadow_attributes/add/"+eventID, proposal)
}

// Update edits a pending proposal.
func (s *ProposalsService) Update(ctx context.Context, proposalID string, proposal map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/shadow_attributes/edit/"+proposalID, proposal)
}

// Delete discards a proposal.
func (s *ProposalsService) Delete(ctx context.Context, proposalID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/shadow_attributes/delete/"+proposalID, nil)
}

// Get fetches one proposal.
func (s *ProposalsService) Get(ctx context.Context, proposalID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/shadow_attributes/view/"+proposalID, nil)
}

// List returns the proposal index.
func (s *ProposalsService) List(ctx context.Context) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/shadow_attributes", nil)
}
