// Package version provides the DVB API version type reported by frontends.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// API is a DVB API version encoded as (major << 8) | minor, the form
// returned by the DTV_API_VERSION property (e.g. 0x0505 for 5.5).
type API uint32

// Known API milestones.
const (
	// V3 is the legacy fixed-struct API. Devices that cannot report a
	// version are assumed to speak it.
	V3 API = 0x0300
	// V5 introduced the property protocol.
	V5 API = 0x0500
	// V5_5 is the first version with delivery-system enumeration and
	// runtime standard switching.
	V5_5 API = 0x0505
)

// Current is the newest API version this library implements.
const Current = V5_5

// New returns the API version major.minor.
func New(major, minor uint8) API {
	return API(uint32(major)<<8 | uint32(minor))
}

// Major returns the major version.
func (v API) Major() uint8 { return uint8(v >> 8) }

// Minor returns the minor version.
func (v API) Minor() uint8 { return uint8(v) }

// AtLeast reports whether v is other or newer.
func (v API) AtLeast(other API) bool { return v >= other }

// String returns the version as "major.minor".
func (v API) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Parse parses a "major.minor" version string.
func Parse(s string) (API, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || parts[0] == "" {
		return 0, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || parts[1] == "" {
		return 0, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return New(uint8(major), uint8(minor)), nil
}
