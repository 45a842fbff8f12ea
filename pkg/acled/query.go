package acled

// EventsQuery selects events from the "acled" endpoint. All fields are
// optional; the zero value queries everything.
//
// See https://apidocs.acleddata.com/acled_endpoint.html#query-filters
type EventsQuery struct {
	// Country filters on the country or territory name.
	Country Filter[Text]
	// EventID filters on the event_id_cnty identifier.
	EventID Filter[Text]
	// Year filters on the year the event took place.
	Year Filter[Number]
	// Region filters on the world region, by code.
	Region Filter[Region]
	// EventDate filters on the date the event took place.
	EventDate Filter[Date]
	// Timestamp filters on the Unix timestamp of the last upload of the
	// event to the API.
	Timestamp Filter[Number]
}

// Parameters encodes the query as an ordered parameter list. The field
// order is fixed so that generated requests are reproducible; unspecified
// filters are skipped entirely.
func (q *EventsQuery) Parameters() []Pair {
	var params []Pair
	params = append(params, q.Country.Parameters("country")...)
	params = append(params, q.EventID.Parameters("event_id_cnty")...)
	params = append(params, q.Year.Parameters("year")...)
	params = append(params, q.Region.Parameters("region")...)
	params = append(params, q.EventDate.Parameters("event_date")...)
	params = append(params, q.Timestamp.Parameters("timestamp")...)

	return params
}

// DeletedQuery selects records from the "deleted" endpoint. All fields are
// optional; the zero value queries everything.
//
// See https://apidocs.acleddata.com/deleted_endpoint.html#query-filters
type DeletedQuery struct {
	// EventID filters on the event_id_cnty identifier.
	EventID Filter[Text]
	// DeletedTimestamp filters on the Unix timestamp of the deletion.
	DeletedTimestamp Filter[Number]
	// EventDate filters on the date of the deleted event. Not in the
	// upstream filter documentation, but the endpoint accepts it.
	EventDate Filter[Date]
}

// Parameters encodes the query as an ordered parameter list.
func (q *DeletedQuery) Parameters() []Pair {
	var params []Pair
	params = append(params, q.EventID.Parameters("event_id_cnty")...)
	params = append(params, q.DeletedTimestamp.Parameters("deleted_timestamp")...)
	params = append(params, q.EventDate.Parameters("event_date")...)

	return params
}
