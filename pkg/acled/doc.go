// Package acled provides types, interfaces, and helpers for working with
// the ACLED data API (https://apidocs.acleddata.com/).
//
// # Overview
//
// The acled package defines the domain types (Event, DeletedEvent, Region,
// Date), the typed filter values used to build queries, and the Client
// interface for the two read endpoints. A concrete implementation is
// provided by the acledclient package, which wires configuration and
// transport. Most consumers should import acledclient to construct a
// client and then work with the types exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/tensix-io/acled-client/pkg/acled"
//	  "github.com/tensix-io/acled-client/pkg/acledclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := acledclient.New(&acled.Config{Key: "XXXXX", Email: "foo@example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  events, err := cli.Events(ctx, &acled.EventsQuery{
//	    Country: acled.Matches(acled.Text("Afghanistan")),
//	    Year:    acled.GreaterThanOrEqual(acled.Number(2022)),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = events
//	}
//
// # Queries
//
// Every query field is a Filter over one of the Parameter scalar types
// (Text, Number, Date, Region). The zero value leaves the field out of the
// request; Matches, Equal, Like, GreaterThan, GreaterThanOrEqual, and
// Between select the API's comparison operator for it. Filters encode to
// the API's two-parameter convention: an explicit operator goes in
// "<field>_where" ahead of the value in "<field>".
//
// # Pagination
//
// Events and DeletedEvents follow pagination internally and return the
// complete result set. The API gives no explicit continuation signal;
// completion is inferred from a page shorter than Config.PageLimit. Pages
// are fetched strictly sequentially, and any failure discards everything
// accumulated so far; callers get all-or-nothing results.
//
// # Errors
//
// Failures carry their category: *APIError for structured upstream
// failures, *ParseError for record fields that would not parse, ErrEnvelope
// for responses that break the envelope contract, and wrapped transport
// errors for everything below. Helpers IsAPIError, IsParseError, and
// IsEnvelopeViolation make it easy to branch on them.
package acled
