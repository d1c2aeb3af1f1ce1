// types/vector.go
package types

// Geodetic is an observatory location on the reference ellipsoid.
type Geodetic struct {
	LatDeg   float64 `json:"latDeg"`
	LonDeg   float64 `json:"lonDeg"`
	HeightKm float64 `json:"heightKm"` // height above the ellipsoid (HAE)
}

// SEZ is a topocentric South-East-Zenith vector in kilometers.
type SEZ struct {
	S float64 `json:"s"`
	E float64 `json:"e"`
	Z float64 `json:"z"`
}

// ECEF is an Earth-Centered-Earth-Fixed vector in kilometers.
type ECEF struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the component-wise sum a + b.
func (a ECEF) Add(b ECEF) ECEF {
	return ECEF{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the component-wise difference a - b.
func (a ECEF) Sub(b ECEF) ECEF {
	return ECEF{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}
