package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lvonguyen/mispgate/internal/misp"
)

// CallFunc performs the one remote call an action maps to.
type CallFunc func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error)

// Action declares one endpoint: its route, the fields it insists on, the
// remote call it forwards to and the envelope it answers with. The whole API
// surface is this table plus one generic handler.
type Action struct {
	Path      string
	Component string
	Op        string
	// Required lists the designated field subset. A request is rejected only
	// when every listed field is absent or falsy, not when any one is; this
	// all-or-nothing check is the legacy surface's documented behavior and is
	// kept for compatibility.
	Required   []string
	Status     int    // success status; 0 means 200
	Message    string // success message; may contain one %v
	MessageArg string // body field substituted into Message
	Cacheable  bool   // read-only action eligible for the redis cache
	Call       CallFunc
}

// Table is the full route list. Paths, success messages and required-field
// sets mirror the legacy surface verbatim, warts included.
var Table = []Action{
	// Publish
	{
		Path: "/publish/", Component: "publish", Op: "publish",
		Required: []string{"event_id"}, Message: "Event Published",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Events.Publish(ctx, f.Str("event_id"))
		},
	},
	{
		Path: "/unpublish/", Component: "publish", Op: "unpublish",
		Required: []string{"event_id"}, Message: "Event Unpublished",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Events.Unpublish(ctx, f.Str("event_id"))
		},
	},

	// Events
	{
		Path: "/add-event/", Component: "events", Op: "add_event",
		Required: []string{"info", "analysis", "threat_level_id"},
		Status:   http.StatusCreated, Message: "Event Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Events.Add(ctx, f.Str("info"), f.Any("analysis"), f.Any("threat_level_id"))
		},
	},
	{
		Path: "/get-event/", Component: "events", Op: "get_event_list",
		Required: []string{"event_id"}, Message: "Event Lists", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Events.Get(ctx, f.Str("event_id"))
		},
	},
	{
		Path: "/update-event/", Component: "events", Op: "update_event",
		Required: []string{"info", "analysis", "threat_level_id"},
		Message:  "Event updated on MISP",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Events.Update(ctx, f.Str("event_id"), f.Str("info"), f.Any("analysis"), f.Any("threat_level_id"))
		},
	},
	{
		Path: "/delete-event/", Component: "events", Op: "delete_event",
		Message: "Event %v deleted .", MessageArg: "event_id",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Events.Delete(ctx, f.Str("event_id"))
		},
	},
	{
		Path: "/list-event/", Component: "events", Op: "events_list",
		Message: "Event Lists.", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Events.List(ctx)
		},
	},

	// Attributes
	{
		Path: "/list-attr/", Component: "attributes", Op: "attributes_list",
		Message: "Attribute Lists.", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Attributes.List(ctx)
		},
	},
	{
		Path: "/add-attr/", Component: "attributes", Op: "add_attr",
		Required: []string{"event_id", "value", "category", "type"},
		Status:   http.StatusCreated, Message: "Event Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Attributes.Add(ctx, f.Str("event_id"), f.Str("value"), f.Str("category"),
				f.Str("type"), f.Str("first_seen"), f.Str("last_seen"), f.Bool("disable_correlation"))
		},
	},
	{
		Path: "/update-attr/", Component: "attributes", Op: "update_attribute",
		Required: []string{"attribute_id", "value", "category", "type"},
		Message:  "Attribute Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Attributes.Update(ctx, f.Str("attribute_id"), f.Str("value"), f.Str("category"),
				f.Str("type"), f.Str("first_seen"), f.Str("last_seen"), f.Bool("disable_correlation"))
		},
	},
	{
		Path: "/delete-attr/", Component: "attributes", Op: "delete_attribute",
		Required: []string{"attribute_id"},
		Status:   http.StatusNoContent, Message: "Attribute deleted",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Attributes.Delete(ctx, f.Str("attribute_id"))
		},
	},
	{
		Path: "/get-attr/", Component: "attributes", Op: "get_attribute",
		Required: []string{"attribute_id"}, Message: "Event Objects", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Attributes.Get(ctx, f.Str("attribute_id"))
		},
	},

	// Search
	{
		Path: "/search/", Component: "search", Op: "search",
		Required: []string{"controller"}, Message: "Search Response.",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Search.Search(ctx, f.Str("controller"), f.Map("kwargs"))
		},
	},

	// Event reports
	{
		Path: "/add-report/", Component: "reports", Op: "add_event_report",
		Required: []string{"event_id"},
		Status:   http.StatusCreated, Message: "Event Report Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Reports.Add(ctx, f.Str("event_id"), f.Rest("event_id"))
		},
	},
	{
		Path: "/get-reports/", Component: "reports", Op: "get_event_reports",
		Required: []string{"event_id"}, Message: "Event Reports", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Reports.ListForEvent(ctx, f.Str("event_id"))
		},
	},
	{
		Path: "/update-report/", Component: "reports", Op: "update_event_report",
		Required: []string{"report_id"}, Message: "Event Report Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Reports.Update(ctx, f.Str("report_id"), f.Rest("report_id"))
		},
	},
	{
		Path: "/delete-report/", Component: "reports", Op: "delete_event_report",
		Required: []string{"report_id"}, Message: "Event Report Deleted",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Reports.Delete(ctx, f.Str("report_id"))
		},
	},

	// Tags
	{
		Path: "/add-tag/", Component: "tags", Op: "add_tag",
		Required: []string{"name"},
		Status:   http.StatusCreated, Message: "Tag Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Tags.Add(ctx, f.Rest())
		},
	},
	{
		Path: "/update-tag/", Component: "tags", Op: "update_tag",
		Required: []string{"tag_id"}, Message: "Tag Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Tags.Update(ctx, f.Str("tag_id"), f.Rest("tag_id"))
		},
	},
	{
		Path: "/delete-tag/", Component: "tags", Op: "delete_tag",
		Required: []string{"tag_id"}, Message: "Tag Deleted",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Tags.Delete(ctx, f.Str("tag_id"))
		},
	},
	{
		Path: "/list-tag/", Component: "tags", Op: "list_tag",
		Message: "Tag Lists.", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Tags.List(ctx)
		},
	},
	{
		Path: "/get-tag/", Component: "tags", Op: "get_tag",
		Required: []string{"tag_id"}, Message: "Tag Details", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Tags.Get(ctx, f.Str("tag_id"))
		},
	},

	// Objects
	{
		Path: "/add-obj/", Component: "objects", Op: "add_obj",
		Required: []string{"event_id", "name"},
		Status:   http.StatusCreated, Message: "Object Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Objects.Add(ctx, f.Str("event_id"), f.Str("name"), f.Str("comment"),
				f.Int64("first_seen"), f.Int64("last_seen"), f.Maps("attributes"))
		},
	},
	{
		Path: "/update-obj/", Component: "objects", Op: "update_obj",
		Required: []string{"obj_id"}, Message: "Object Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Objects.Update(ctx, f.Str("obj_id"), f.Str("name"), f.Str("comment"),
				f.Int64("first_seen"), f.Int64("last_seen"), f.Maps("attributes"))
		},
	},
	{
		Path: "/get-obj/", Component: "objects", Op: "get_obj",
		Required: []string{"obj_id"}, Message: "Object Details", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Objects.Get(ctx, f.Str("obj_id"))
		},
	},
	{
		Path: "/delete-obj/", Component: "objects", Op: "delete_obj",
		Required: []string{"obj_id"}, Message: "Object Deleted",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Objects.Delete(ctx, f.Str("obj_id"))
		},
	},

	// Feeds
	{
		Path: "/add-feed/", Component: "feeds", Op: "add_feed",
		Required: []string{"name", "provider", "url"},
		Status:   http.StatusCreated, Message: "Feed Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Feeds.Add(ctx, f.Rest())
		},
	},
	{
		Path: "/update-feed/", Component: "feeds", Op: "update_feed",
		Required: []string{"feed_id"}, Message: "Feed Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Feeds.Update(ctx, f.Str("feed_id"), f.Rest("feed_id"))
		},
	},
	{
		Path: "/delete-feed/", Component: "feeds", Op: "delete_feed",
		Required: []string{"feed_id"}, Message: "Feed Deleted",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Feeds.Delete(ctx, f.Str("feed_id"))
		},
	},
	{
		Path: "/list-feed/", Component: "feeds", Op: "feeds",
		Message: "Feed Lists.", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Feeds.List(ctx)
		},
	},
	{
		Path: "/get-feed/", Component: "feeds", Op: "get_feed",
		Required: []string{"feed_id"}, Message: "Feed Details", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Feeds.Get(ctx, f.Str("feed_id"))
		},
	},

	// Attribute proposals
	{
		Path: "/add-attr-proposal/", Component: "proposals", Op: "add_attribute_proposal",
		Required: []string{"event_id"},
		Status:   http.StatusCreated, Message: "Attribute Proposal Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Proposals.Add(ctx, f.Str("event_id"), f.Rest("event_id"))
		},
	},
	{
		Path: "/update-proposal/", Component: "proposals", Op: "update_attribute_proposal",
		Required: []string{"proposal_id"}, Message: "Attribute Proposal Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Proposals.Update(ctx, f.Str("proposal_id"), f.Rest("proposal_id"))
		},
	},
	{
		Path: "/delete-proposal/", Component: "proposals", Op: "delete_attribute_proposal",
		Required: []string{"proposal_id"}, Message: "Attribute Proposal Deleted",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Proposals.Delete(ctx, f.Str("proposal_id"))
		},
	},
	{
		Path: "/list-proposal/", Component: "proposals", Op: "attribute_proposals",
		Message: "Attribute Proposal Lists.", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Proposals.List(ctx)
		},
	},
	{
		Path: "/get-proposal/", Component: "proposals", Op: "get_attribute_proposal",
		Required: []string{"proposal_id"}, Message: "Attribute Proposal Details", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Proposals.Get(ctx, f.Str("proposal_id"))
		},
	},

	// Users
	{
		Path: "/add-user/", Component: "users", Op: "add_user",
		Required: []string{"email", "org_id", "role_id"},
		Status:   http.StatusCreated, Message: "User Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Users.Add(ctx, f.Rest())
		},
	},
	{
		Path: "/update-user/", Component: "users", Op: "update_user",
		Required: []string{"user_id"}, Message: "User Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Users.Update(ctx, f.Str("user_id"), f.Rest("user_id"))
		},
	},
	{
		Path: "/delete-user/", Component: "users", Op: "delete_user",
		Required: []string{"user_id"}, Message: "User Deleted",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Users.Delete(ctx, f.Str("user_id"))
		},
	},
	{
		Path: "/list-users/", Component: "users", Op: "users",
		Message: "User Lists.", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Users.List(ctx)
		},
	},
	{
		Path: "/get-user/", Component: "users", Op: "get_user",
		Required: []string{"user_id"}, Message: "User Details", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Users.Get(ctx, f.Str("user_id"))
		},
	},

	// Organisations
	{
		Path: "/add-orgns/", Component: "organisations", Op: "add_orgns",
		Required: []string{"name"},
		Status:   http.StatusCreated, Message: "Organisation Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Organisations.Add(ctx, f.Rest())
		},
	},
	{
		Path: "/update-orgns/", Component: "organisations", Op: "update_orgns",
		Required: []string{"orgns_id"}, Message: "Organisation Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Organisations.Update(ctx, f.Str("orgns_id"), f.Rest("orgns_id"))
		},
	},
	{
		Path: "/delete-orgns/", Component: "organisations", Op: "delete_orgns",
		Required: []string{"orgns_id"}, Message: "Organisation Deleted",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Organisations.Delete(ctx, f.Str("orgns_id"))
		},
	},
	{
		Path: "/list-orgns/", Component: "organisations", Op: "organisations",
		Message: "Organisation Lists.", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Organisations.List(ctx)
		},
	},
	{
		Path: "/get-orgns/", Component: "organisations", Op: "get_orgns",
		Required: []string{"orgns_id"}, Message: "Organisation Details", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Organisations.Get(ctx, f.Str("orgns_id"))
		},
	},

	// Notes (analyst data of kind note)
	{
		Path: "/add-note/", Component: "notes", Op: "add_note",
		Required: []string{"object_uuid", "object_type", "note"},
		Status:   http.StatusCreated, Message: "Note Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.AnalystData.Add(ctx, misp.AnalystKindNote, f.Rest())
		},
	},
	{
		Path: "/update-note/", Component: "notes", Op: "update_note",
		Required: []string{"note_id"}, Message: "Note Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.AnalystData.Update(ctx, misp.AnalystKindNote, f.Str("note_id"), f.Rest("note_id"))
		},
	},
	{
		Path: "/get-note/", Component: "notes", Op: "get_note",
		Required: []string{"note_id"}, Message: "Note Details", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.AnalystData.Get(ctx, misp.AnalystKindNote, f.Str("note_id"))
		},
	},

	// Analyst data (kind carried in the body's method discriminator)
	{
		Path: "/add-analyst/", Component: "analyst", Op: "add_analyst_data",
		Required: []string{"method"},
		Status:   http.StatusCreated, Message: "Analyst Data Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.AnalystData.Add(ctx, f.Str("method"), f.Rest("method"))
		},
	},
	{
		Path: "/update-analyst/", Component: "analyst", Op: "update_analyst_data",
		Required: []string{"method", "analyst_id"}, Message: "Analyst Data Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.AnalystData.Update(ctx, f.Str("method"), f.Str("analyst_id"), f.Rest("method", "analyst_id"))
		},
	},
	{
		Path: "/delete-analyst/", Component: "analyst", Op: "delete_analyst_data",
		Required: []string{"method", "analyst_id"}, Message: "Analyst Data Deleted",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.AnalystData.Delete(ctx, f.Str("method"), f.Str("analyst_id"))
		},
	},
	{
		Path: "/get-analyst/", Component: "analyst", Op: "get_analyst_data",
		Required: []string{"method", "analyst_id"}, Message: "Analyst Data Details", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.AnalystData.Get(ctx, f.Str("method"), f.Str("analyst_id"))
		},
	},

	// Galaxies
	{
		Path: "/galaxies/", Component: "galaxies", Op: "galaxies",
		Message: "Galaxies Lists.", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Galaxies.List(ctx)
		},
	},
	{
		Path: "/get-galaxies/", Component: "galaxies", Op: "get_galaxies",
		Required: []string{"galaxy_id"}, Message: "Galaxy Details", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Galaxies.Get(ctx, f.Str("galaxy_id"))
		},
	},
	{
		Path: "/get-galaxies-cluster/", Component: "galaxies", Op: "get_galaxy_cluster",
		Required: []string{"cluster_id"}, Message: "Galaxy Cluster Details", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Galaxies.GetCluster(ctx, f.Str("cluster_id"))
		},
	},
	{
		Path: "/add-galaxies/", Component: "galaxies", Op: "add_galaxy_cluster",
		Required: []string{"galaxy_id"},
		Status:   http.StatusCreated, Message: "Galaxy Cluster Created",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Galaxies.AddCluster(ctx, f.Str("galaxy_id"), f.Rest("galaxy_id"))
		},
	},
	{
		Path: "/update-galaxies/", Component: "galaxies", Op: "update_galaxy_cluster",
		Required: []string{"cluster_id"}, Message: "Galaxy Cluster Updated",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Galaxies.UpdateCluster(ctx, f.Str("cluster_id"), f.Rest("cluster_id"))
		},
	},
	{
		Path: "/publish-galaxy-cluster/", Component: "galaxies", Op: "publish_galaxy_cluster",
		Required: []string{"cluster_id"}, Message: "Galaxy Cluster Published",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Galaxies.PublishCluster(ctx, f.Str("cluster_id"))
		},
	},
	{
		Path: "/delete-galaxy-cluster/", Component: "galaxies", Op: "delete_galaxy_cluster",
		Required: []string{"uuid"}, Message: "Galaxies cluster deleted By ID",
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Galaxies.DeleteCluster(ctx, f.Str("uuid"))
		},
	},
	{
		Path: "/search-galaxy/", Component: "galaxies", Op: "search_galaxy",
		Required: []string{"value"}, Message: "Search Response.", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Galaxies.SearchGalaxies(ctx, f.Str("value"))
		},
	},
	{
		Path: "/search-galaxy-cluster/", Component: "galaxies", Op: "search_galaxy_cluster",
		Required: []string{"galaxy_id"}, Message: "Search Response.", Cacheable: true,
		Call: func(ctx context.Context, s *misp.Services, f Fields) (json.RawMessage, error) {
			return s.Galaxies.SearchClusters(ctx, f.Str("galaxy_id"), f.Rest("galaxy_id"))
		},
	},
}
