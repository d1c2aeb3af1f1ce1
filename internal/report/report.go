// internal/report/report.go
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/yackko/sez2ecef/types"
)

// Decimal exponents outside [minFixedExp, maxFixedExp) are written in
// exponent notation.
const (
	minFixedExp = -4
	maxFixedExp = 16
)

// FormatKm returns the shortest string that round-trips v, written in fixed
// notation for moderate magnitudes and exponent notation otherwise, e.g.
// "6378.1363", "0.0", "1e-05", "1.2345e+16".
func FormatKm(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	_, expPart, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return sci
	}
	if exp < minFixedExp || exp >= maxFixedExp {
		return sci
	}

	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}

// WriteECEF writes the x, y and z components of v to w, one per line.
func WriteECEF(w io.Writer, v types.ECEF) error {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if _, err := fmt.Fprintln(w, FormatKm(c)); err != nil {
			return fmt.Errorf("failed to write ECEF component: %w", err)
		}
	}
	return nil
}
