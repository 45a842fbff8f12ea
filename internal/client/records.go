package client

import (
	"strconv"

	"github.com/tensix-io/acled-client/pkg/acled"
)

// rawEvent is the wire form of one "acled" endpoint record. Every scalar
// arrives as a string, numbers and dates included; the raw form never
// leaves this package.
type rawEvent struct {
	EventIDCnty string `json:"event_id_cnty"`
	EventDate   string `json:"event_date"`
	Timestamp   string `json:"timestamp"`

	DisorderType string `json:"disorder_type"`
	EventType    string `json:"event_type"`
	SubEventType string `json:"sub_event_type"`

	Country string `json:"country"`
	Region  string `json:"region"`
	Admin1  string `json:"admin1"`

	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`

	Notes string `json:"notes"`
}

// rawDeleted is the wire form of one "deleted" endpoint record.
type rawDeleted struct {
	EventIDCnty      string `json:"event_id_cnty"`
	DeletedTimestamp string `json:"deleted_timestamp"`
}

// convertEvent reparses a raw record into the typed form. Fields are parsed
// in a fixed order and the first failure wins; a record either converts
// completely or not at all.
func convertEvent(raw rawEvent) (acled.Event, error) {
	eventDate, err := acled.ParseDate(raw.EventDate)
	if err != nil {
		return acled.Event{}, &acled.ParseError{Field: "event_date", Err: err}
	}

	timestamp, err := strconv.ParseUint(raw.Timestamp, 10, 64)
	if err != nil {
		return acled.Event{}, &acled.ParseError{Field: "timestamp", Err: err}
	}

	region, err := acled.ParseRegion(raw.Region)
	if err != nil {
		return acled.Event{}, &acled.ParseError{Field: "region", Err: err}
	}

	latitude, err := strconv.ParseFloat(raw.Latitude, 64)
	if err != nil {
		return acled.Event{}, &acled.ParseError{Field: "latitude", Err: err}
	}

	longitude, err := strconv.ParseFloat(raw.Longitude, 64)
	if err != nil {
		return acled.Event{}, &acled.ParseError{Field: "longitude", Err: err}
	}

	return acled.Event{
		EventID:      raw.EventIDCnty,
		Timestamp:    timestamp,
		EventDate:    eventDate,
		EventType:    raw.EventType,
		SubEventType: raw.SubEventType,
		DisorderType: raw.DisorderType,
		Region:       region,
		Country:      raw.Country,
		Admin1:       raw.Admin1,
		Latitude:     latitude,
		Longitude:    longitude,
		Notes:        raw.Notes,
	}, nil
}

// convertDeleted reparses a raw deleted record into the typed form.
func convertDeleted(raw rawDeleted) (acled.DeletedEvent, error) {
	timestamp, err := strconv.ParseUint(raw.DeletedTimestamp, 10, 64)
	if err != nil {
		return acled.DeletedEvent{}, &acled.ParseError{Field: "deleted_timestamp", Err: err}
	}

	return acled.DeletedEvent{
		EventID:          raw.EventIDCnty,
		DeletedTimestamp: timestamp,
	}, nil
}
