// internal/config/config.go
package config

import "strings"

// DefaultProgramName is used in the usage line when the executable name
// cannot be determined.
const DefaultProgramName = "sez2ecef"

// ArgNames lists the positional arguments in the order they are read.
var ArgNames = []string{
	"o_lat_deg", // observatory latitude (deg)
	"o_lon_deg", // observatory longitude (deg)
	"o_hae_km",  // observatory height above the ellipsoid (km)
	"s_km",      // SEZ south component (km)
	"e_km",      // SEZ east component (km)
	"z_km",      // SEZ zenith component (km)
}

// ArgCount is the exact number of positional arguments accepted.
const ArgCount = 6

// Usage returns the one-line usage message for program.
func Usage(program string) string {
	if program == "" {
		program = DefaultProgramName
	}
	return "Usage: " + program + " " + strings.Join(ArgNames, " ")
}
