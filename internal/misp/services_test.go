package misp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type recordedRequest struct {
	method string
	path   string
	body   map[string]any
}

// newRecordingServices spins up a fake MISP and returns the wrapper set bound
// to it plus a pointer to the last request it saw.
func newRecordingServices(t *testing.T) (*Services, *recordedRequest) {
	t.Helper()
	last := &recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.method = r.Method
		last.path = r.URL.Path
		last.body = nil
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&last.body)
		}
		w.Write([]byte(`{"saved":true}`))
	}))
	t.Cleanup(server.Close)

	return NewServices(newTestClient(t, server.URL)), last
}

// TestEventsAdd_DerivedFields verifies event creation carries the forwarded
// fields plus a fresh date and matching epoch timestamps.
func TestEventsAdd_DerivedFields(t *testing.T) {
	services, last := newRecordingServices(t)

	before := time.Now().Unix()
	if _, err := services.Events.Add(context.Background(), "Test Event", 1, 2); err != nil {
		t.Fatalf("Add should succeed: %v", err)
	}
	after := time.Now().Unix()

	if last.path != "/events/add" {
		t.Errorf("expected /events/add, got %q", last.path)
	}
	if last.body["info"] != "Test Event" {
		t.Errorf("expected info to pass through, got %v", last.body["info"])
	}
	if last.body["analysis"] != float64(1) || last.body["threat_level_id"] != float64(2) {
		t.Errorf("analysis/threat_level_id should pass through, got %v / %v",
			last.body["analysis"], last.body["threat_level_id"])
	}

	wantDate := time.Now().In(tehran).Format("2006-01-02")
	if last.body["date"] != wantDate {
		t.Errorf("expected date %q, got %v", wantDate, last.body["date"])
	}

	ts, _ := last.body["timestamp"].(float64)
	pts, _ := last.body["publish_timestamp"].(float64)
	if int64(ts) < before || int64(ts) > after {
		t.Errorf("timestamp %v should be the current epoch", ts)
	}
	if ts != pts {
		t.Errorf("timestamp and publish_timestamp should match, got %v / %v", ts, pts)
	}
}

// TestEventsAdd_FreshTimestampPerCall verifies derived values are recomputed
// on every call instead of being cached at construction.
func TestEventsAdd_FreshTimestampPerCall(t *testing.T) {
	services, last := newRecordingServices(t)

	services.Events.Add(context.Background(), "first", 1, 1)
	first, _ := last.body["timestamp"].(float64)

	time.Sleep(1100 * time.Millisecond)

	services.Events.Add(context.Background(), "second", 1, 1)
	second, _ := last.body["timestamp"].(float64)

	if second <= first {
		t.Errorf("second call should carry a later timestamp: %v then %v", first, second)
	}
}

// TestAttributesAdd_DateConversion verifies first_seen/last_seen are parsed
// from YYYY-MM-DD into epoch seconds at midnight UTC.
func TestAttributesAdd_DateConversion(t *testing.T) {
	services, last := newRecordingServices(t)

	_, err := services.Attributes.Add(context.Background(),
		"12", "198.51.100.7", "Network activity", "ip-dst", "2024-01-15", "2024-01-20", true)
	if err != nil {
		t.Fatalf("Add should succeed: %v", err)
	}

	if last.path != "/attributes/add/12" {
		t.Errorf("expected /attributes/add/12, got %q", last.path)
	}

	wantFirst := float64(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).Unix())
	wantLast := float64(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC).Unix())
	if last.body["first_seen"] != wantFirst {
		t.Errorf("expected first_seen %v, got %v", wantFirst, last.body["first_seen"])
	}
	if last.body["last_seen"] != wantLast {
		t.Errorf("expected last_seen %v, got %v", wantLast, last.body["last_seen"])
	}
	if last.body["disable_correlation"] != true {
		t.Errorf("disable_correlation should pass through, got %v", last.body["disable_correlation"])
	}
}

// TestAttributesAdd_InvalidDate verifies a malformed first_seen is rejected
// before any remote call.
func TestAttributesAdd_InvalidDate(t *testing.T) {
	services, last := newRecordingServices(t)

	_, err := services.Attributes.Add(context.Background(),
		"12", "198.51.100.7", "Network activity", "ip-dst", "not-a-date", "", false)
	if err == nil {
		t.Fatal("Add should reject a malformed first_seen")
	}
	if last.path != "" {
		t.Errorf("no remote call should be made, but saw %q", last.path)
	}
}

// TestObjectsAdd_EpochToDate verifies object seen-times are re-embedded as
// zero-padded dates.
func TestObjectsAdd_EpochToDate(t *testing.T) {
	services, last := newRecordingServices(t)

	firstSeen := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC).Unix()
	attrs := []map[string]any{{"object_relation": "ip", "value": "198.51.100.7"}}
	if _, err := services.Objects.Add(context.Background(), "12", "ip-port", "c2", firstSeen, 0, attrs); err != nil {
		t.Fatalf("Add should succeed: %v", err)
	}

	if last.body["first_seen"] != "2024-03-05" {
		t.Errorf("expected first_seen 2024-03-05, got %v", last.body["first_seen"])
	}
	if _, present := last.body["last_seen"]; present {
		t.Error("zero last_seen should be omitted")
	}
	if _, present := last.body["Attribute"]; !present {
		t.Error("attributes should be embedded under Attribute")
	}
}

// TestAnalystData_KindValidation verifies the method discriminator only
// accepts the three annotation kinds.
func TestAnalystData_KindValidation(t *testing.T) {
	services, last := newRecordingServices(t)

	if _, err := services.AnalystData.Add(context.Background(), "verdict", map[string]any{}); err == nil {
		t.Error("unknown kinds should be rejected")
	}
	if last.path != "" {
		t.Errorf("no remote call should be made for a bad kind, but saw %q", last.path)
	}

	for _, kind := range []string{AnalystKindNote, AnalystKindOpinion, AnalystKindRelationship} {
		if _, err := services.AnalystData.Add(context.Background(), kind, map[string]any{"note": "x"}); err != nil {
			t.Errorf("kind %q should be accepted: %v", kind, err)
		}
		if last.path != "/analyst_data/add/"+kind {
			t.Errorf("expected /analyst_data/add/%s, got %q", kind, last.path)
		}
	}
}

// TestSearch_ControllerValidation verifies only searchable controllers pass.
func TestSearch_ControllerValidation(t *testing.T) {
	services, last := newRecordingServices(t)

	if _, err := services.Search.Search(context.Background(), "users", nil); err == nil {
		t.Error("non-searchable controllers should be rejected")
	}

	if _, err := services.Search.Search(context.Background(), "attributes", map[string]any{"value": "198.51.100.7"}); err != nil {
		t.Fatalf("Search should succeed: %v", err)
	}
	if last.path != "/attributes/restSearch" {
		t.Errorf("expected /attributes/restSearch, got %q", last.path)
	}
	if last.body["value"] != "198.51.100.7" {
		t.Errorf("query should pass through verbatim, got %v", last.body)
	}
}

// TestPassthroughPaths spot-checks the controller paths of the verbatim
// pass-through categories.
func TestPassthroughPaths(t *testing.T) {
	services, last := newRecordingServices(t)
	ctx := context.Background()
	fields := map[string]any{"name": "x"}

	calls := []struct {
		run      func() (json.RawMessage, error)
		wantPath string
		wantVerb string
	}{
		{func() (json.RawMessage, error) { return services.Tags.Add(ctx, fields) }, "/tags/add", http.MethodPost},
		{func() (json.RawMessage, error) { return services.Tags.List(ctx) }, "/tags", http.MethodGet},
		{func() (json.RawMessage, error) { return services.Feeds.Update(ctx, "3", fields) }, "/feeds/edit/3", http.MethodPost},
		{func() (json.RawMessage, error) { return services.Proposals.Add(ctx, "7", fields) }, "/shadow_attributes/add/7", http.MethodPost},
		{func() (json.RawMessage, error) { return services.Users.Delete(ctx, "4") }, "/admin/users/delete/4", http.MethodPost},
		{func() (json.RawMessage, error) { return services.Organisations.Get(ctx, "2") }, "/organisations/view/2", http.MethodGet},
		{func() (json.RawMessage, error) { return services.Galaxies.DeleteCluster(ctx, "uuid-1") }, "/galaxy_clusters/delete/uuid-1", http.MethodPost},
		{func() (json.RawMessage, error) { return services.Reports.Add(ctx, "9", fields) }, "/event_reports/add/9", http.MethodPost},
		{func() (json.RawMessage, error) { return services.Events.Publish(ctx, "5") }, "/events/publish/5", http.MethodPost},
	}

	for _, call := range calls {
		if _, err := call.run(); err != nil {
			t.Errorf("call to %s should succeed: %v", call.wantPath, err)
			continue
		}
		if last.path != call.wantPath {
			t.Errorf("expected path %q, got %q", call.wantPath, last.path)
		}
		if last.method != call.wantVerb {
			t.Errorf("expected %s for %q, got %s", call.wantVerb, call.wantPath, last.method)
		}
	}
}
