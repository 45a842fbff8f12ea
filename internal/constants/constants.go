package constants

import "time"

// API endpoint defaults.
const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.acleddata.com"

	// DefaultPageLimit is the upstream row limit per request. The API
	// signals completion only implicitly, by returning a page shorter
	// than this; request sizing and termination detection must share it.
	// See https://apidocs.acleddata.com/generalities_section.html#adjusting-the-limit-on-the-number-of-rows-returned
	DefaultPageLimit = 5000
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits, applied only when a caller opts into transport retries.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
