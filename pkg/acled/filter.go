package acled

import "strconv"

// Pair is a single query parameter. Requests are built from ordered pair
// lists rather than url.Values because the API's two-parameter filter
// convention depends on the operator pair preceding the value pair.
type Pair struct {
	Key   string
	Value string
}

// Parameter is implemented by every scalar type that can appear in a query
// filter. QueryValue renders the value exactly as the API expects it in a
// query string.
type Parameter interface {
	QueryValue() string
}

// Text is a string filter value, rendered verbatim.
type Text string

// QueryValue implements Parameter.
func (t Text) QueryValue() string {
	return string(t)
}

// Number is an unsigned integer filter value, rendered as decimal text.
// Used for years and Unix timestamps.
type Number uint64

// QueryValue implements Parameter.
func (n Number) QueryValue() string {
	return strconv.FormatUint(uint64(n), 10)
}

type filterOp uint8

const (
	opUnspecified filterOp = iota
	opMatches
	opEqual
	opLike
	opGreaterThan
	opGreaterThanOrEqual
	opBetween
)

// operator returns the API query-type string sent in the "<field>_where"
// parameter. Matches and Unspecified never emit an operator pair.
func (op filterOp) operator() string {
	switch op {
	case opEqual:
		return "="
	case opLike:
		return "LIKE"
	case opGreaterThan:
		return ">"
	case opGreaterThanOrEqual:
		return ">="
	case opBetween:
		return "BETWEEN"
	default:
		return ""
	}
}

// Filter is a per-field comparison constraint. The zero value is
// "unspecified" and contributes nothing to a query, so query structs can be
// zero-initialized and filled field by field.
//
// See https://apidocs.acleddata.com/generalities_section.html#query-types
// for the upstream query-type convention.
type Filter[T Parameter] struct {
	op   filterOp
	a, b T
}

// Matches filters with the endpoint's default comparison for the field
// (usually LIKE or =, per the API docs).
func Matches[T Parameter](v T) Filter[T] {
	return Filter[T]{op: opMatches, a: v}
}

// Equal filters with an exact match (query type "=").
func Equal[T Parameter](v T) Filter[T] {
	return Filter[T]{op: opEqual, a: v}
}

// Like filters with a pattern match (query type "LIKE"); "*" is the
// upstream wildcard.
func Like[T Parameter](v T) Filter[T] {
	return Filter[T]{op: opLike, a: v}
}

// GreaterThan filters numeric or date fields with ">".
func GreaterThan[T Parameter](v T) Filter[T] {
	return Filter[T]{op: opGreaterThan, a: v}
}

// GreaterThanOrEqual filters numeric or date fields with ">=".
// Undocumented upstream but accepted.
func GreaterThanOrEqual[T Parameter](v T) Filter[T] {
	return Filter[T]{op: opGreaterThanOrEqual, a: v}
}

// Between filters with an inclusive range (query type "BETWEEN"); the two
// bounds are joined with "|" in the value parameter.
func Between[T Parameter](low, high T) Filter[T] {
	return Filter[T]{op: opBetween, a: low, b: high}
}

// Parameters encodes the filter for the named field. An unspecified filter
// encodes to nil; the default comparison emits a single value pair; every
// explicit operator emits the operator pair followed by the value pair.
// The encoding is a pure function of the field name and the filter.
func (f Filter[T]) Parameters(field string) []Pair {
	switch f.op {
	case opUnspecified:
		return nil
	case opMatches:
		return []Pair{{Key: field, Value: f.a.QueryValue()}}
	case opBetween:
		return []Pair{
			{Key: field + "_where", Value: f.op.operator()},
			{Key: field, Value: f.a.QueryValue() + "|" + f.b.QueryValue()},
		}
	default:
		return []Pair{
			{Key: field + "_where", Value: f.op.operator()},
			{Key: field, Value: f.a.QueryValue()},
		}
	}
}
