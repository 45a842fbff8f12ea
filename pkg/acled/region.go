package acled

import (
	"fmt"
	"strconv"
)

// Region identifies one of the world regions ACLED partitions its data
// into. Query parameters carry the numeric code; response records carry the
// human-readable name. The codes are stable upstream identifiers, not
// contiguous.
//
// See https://apidocs.acleddata.com/acled_endpoint.html#regions
type Region int

const (
	WesternAfrica          Region = 1
	MiddleAfrica           Region = 2
	EasternAfrica          Region = 3
	SouthernAfrica         Region = 4
	NorthernAfrica         Region = 5
	SouthAsia              Region = 7
	SoutheastAsia          Region = 9
	MiddleEast             Region = 11
	Europe                 Region = 12
	CaucasusAndCentralAsia Region = 13
	CentralAmerica         Region = 14
	SouthAmerica           Region = 15
	Caribbean              Region = 16
	EastAsia               Region = 17
	NorthAmerica           Region = 18
	Oceania                Region = 19
	Antarctica             Region = 20
)

var regionNames = map[Region]string{
	WesternAfrica:          "Western Africa",
	MiddleAfrica:           "Middle Africa",
	EasternAfrica:          "Eastern Africa",
	SouthernAfrica:         "Southern Africa",
	NorthernAfrica:         "Northern Africa",
	SouthAsia:              "South Asia",
	SoutheastAsia:          "Southeast Asia",
	MiddleEast:             "Middle East",
	Europe:                 "Europe",
	CaucasusAndCentralAsia: "Caucasus and Central Asia",
	CentralAmerica:         "Central America",
	SouthAmerica:           "South America",
	Caribbean:              "Caribbean",
	EastAsia:               "East Asia",
	NorthAmerica:           "North America",
	Oceania:                "Oceania",
	Antarctica:             "Antarctica",
}

var regionCodes = func() map[string]Region {
	codes := make(map[string]Region, len(regionNames))
	for region, name := range regionNames {
		codes[name] = region
	}

	return codes
}()

// String returns the region name as it appears in API responses.
func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}

	return fmt.Sprintf("Region(%d)", int(r))
}

// QueryValue implements Parameter. Query strings use the numeric region
// code, not the name.
func (r Region) QueryValue() string {
	return strconv.Itoa(int(r))
}

// Valid reports whether r is one of the known region codes.
func (r Region) Valid() bool {
	_, ok := regionNames[r]

	return ok
}

// ParseRegion maps a region name from an API response back to its code.
// The name must match one of the known region names exactly.
func ParseRegion(name string) (Region, error) {
	region, ok := regionCodes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}

	return region, nil
}
