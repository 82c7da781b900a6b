package misp

import (
	"context"
	"encoding/json"
	"net/http"
)

// GalaxiesService wraps the /galaxies and /galaxy_clusters controllers.
type GalaxiesService struct {
	client *Client
}

// List returns the galaxy index.
func (s *GalaxiesService) List(ctx context.Context) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/galaxies", nil)
}

// Get fetches one galaxy.
func (s *GalaxiesService) Get(ctx context.Context, galaxyID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/galaxies/view/"+galaxyID, nil)
}

// GetCluster fetches one galaxy cluster.
func (s *GalaxiesService) GetCluster(ctx context.Context, clusterID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodGet, "/galaxy_clusters/view/"+clusterID, nil)
}

// AddCluster creates a cluster under a galaxy. Cluster fields pass through
// verbatim.
func (s *GalaxiesService) AddCluster(ctx context.Context, galaxyID string, cluster map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/galaxy_clusters/add/"+galaxyID, cluster)
}

// UpdateCluster edits an existing cluster.
func (s *GalaxiesService) UpdateCluster(ctx context.Context, clusterID string, cluster map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/galaxy_clusters/edit/"+clusterID, cluster)
}

// PublishCluster marks a cluster as published.
func (s *GalaxiesService) PublishCluster(ctx context.Context, clusterID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/galaxy_clusters/publish/"+clusterID, nil)
}

// DeleteCluster removes a cluster by ID or UUID.
func (s *GalaxiesService) DeleteCluster(ctx context.Context, clusterID string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/galaxy_clusters/delete/"+clusterID, nil)
}

// SearchGalaxies searches galaxies by value.
func (s *GalaxiesService) SearchGalaxies(ctx context.Context, value string) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/galaxies", map[string]any{"value": value})
}

// SearchClusters searches clusters within a galaxy.
func (s *GalaxiesService) SearchClusters(ctx context.Context, galaxyID string, query map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, http.MethodPost, "/galaxy_clusters/restsearch/"+galaxyID, query)
}
