// Package input turns positional command-line values into an observatory
// location and an SEZ vector.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yackko/sez2ecef/internal/config"
	"github.com/yackko/sez2ecef/types"
)

// ErrUsage is returned when the number of arguments is not config.ArgCount.
var ErrUsage = errors.New("wrong number of arguments")

// ArgumentError reports a positional argument that is not a number.
type ArgumentError struct {
	Name  string
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid numeric argument %s=%q: %v", e.Name, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// Parse reads the six positional values o_lat_deg o_lon_deg o_hae_km s_km
// e_km z_km. Values are not range checked.
func Parse(args []string) (types.Geodetic, types.SEZ, error) {
	if len(args) != config.ArgCount {
		return types.Geodetic{}, types.SEZ{}, fmt.Errorf("%w: got %d, want %d", ErrUsage, len(args), config.ArgCount)
	}

	var vals [config.ArgCount]float64
	for i, raw := range args {
		v, err := parseFloat(raw)
		if err != nil {
			return types.Geodetic{}, types.SEZ{}, &ArgumentError{Name: config.ArgNames[i], Value: raw, Err: err}
		}
		vals[i] = v
	}

	obs := types.Geodetic{LatDeg: vals[0], LonDeg: vals[1], HeightKm: vals[2]}
	sez := types.SEZ{S: vals[3], E: vals[4], Z: vals[5]}
	return obs, sez, nil
}

// parseFloat accepts surrounding whitespace as well as nan and inf spellings.
// Hexadecimal floats such as 0x1p0 are rejected.
func parseFloat(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if isHex(s) {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			// Out-of-range values still parse to ±Inf, matching the
			// original number parser.
			if errors.Is(numErr.Err, strconv.ErrRange) {
				return v, nil
			}
			return 0, numErr.Err
		}
		return 0, err
	}
	return v, nil
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
