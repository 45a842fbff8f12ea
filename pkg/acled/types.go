package acled

// Event is one event row from the "acled" endpoint, with every scalar
// parsed out of the API's all-string wire form.
//
// Field descriptions follow https://apidocs.acleddata.com/acled_endpoint.html
type Event struct {
	// EventID is the unique alphanumeric event identifier by number and
	// country acronym. It stays constant across event updates.
	EventID string `json:"event_id_cnty" yaml:"event_id_cnty"`
	// Timestamp is the Unix timestamp of the last upload of the event to
	// the API.
	Timestamp uint64 `json:"timestamp" yaml:"timestamp"`
	// EventDate is the date the event took place.
	EventDate Date `json:"event_date" yaml:"event_date"`
	// EventType is the type of event.
	EventType string `json:"event_type" yaml:"event_type"`
	// SubEventType is the subcategory of the event type.
	SubEventType string `json:"sub_event_type" yaml:"sub_event_type"`
	// DisorderType is the disorder category the event belongs to.
	DisorderType string `json:"disorder_type" yaml:"disorder_type"`
	// Region is the world region where the event took place.
	Region Region `json:"region" yaml:"region"`
	// Country is the country or territory in which the event took place.
	Country string `json:"country" yaml:"country"`
	// Admin1 is the largest sub-national administrative region.
	Admin1 string `json:"admin1" yaml:"admin1"`

	Latitude  float64 `json:"latitude"  yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`

	// Notes is a short description of the event.
	Notes string `json:"notes" yaml:"notes"`
}

// DeletedEvent is one row from the "deleted" endpoint.
//
// See https://apidocs.acleddata.com/deleted_endpoint.html
type DeletedEvent struct {
	// EventID is the identifier the deleted event carried.
	EventID string `json:"event_id_cnty" yaml:"event_id_cnty"`
	// DeletedTimestamp is the Unix timestamp of the deletion.
	DeletedTimestamp uint64 `json:"deleted_timestamp" yaml:"deleted_timestamp"`
}
