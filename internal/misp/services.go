package misp

// Services bundles the per-category wrappers around one shared client.
// Each wrapper exposes one method per supported operation, each a single
// forwarding call: no retries, no batching, no response-shape validation.
type Services struct {
	Events        *EventsService
	Attributes    *AttributesService
	Objects       *ObjectsService
	Tags          *TagsService
	Feeds         *FeedsService
	Proposals     *ProposalsService
	Users         *UsersService
	Organisations *OrganisationsService
	AnalystData   *AnalystDataService
	Galaxies      *GalaxiesService
	Reports       *ReportsService
	Search        *SearchService
}

// NewServices creates the full wrapper set over a single client handle.
func NewServices(c *Client) *Services {
	return &Services{
		Events:        &EventsService{client: c},
		Attributes:    &AttributesService{client: c},
		Objects:       &ObjectsService{client: c},
		Tags:          &TagsService{client: c},
		Feeds:         &FeedsService{client: c},
		Proposals:     &ProposalsService{client: c},
		Users:         &UsersService{client: c},
		Organisations: &OrganisationsService{client: c},
		AnalystData:   &AnalystDataService{client: c},
		Galaxies:      &GalaxiesService{client: c},
		Reports:       &ReportsService{client: c},
		Search:        &SearchService{client: c},
	}
}
