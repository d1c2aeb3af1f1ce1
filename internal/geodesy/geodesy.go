// Package geodesy converts topocentric SEZ vectors into the ECEF frame on a
// fixed reference ellipsoid. All lengths are kilometers.
package geodesy

import (
	"math"

	"github.com/yackko/sez2ecef/types"
)

// Reference ellipsoid parameters.
const (
	EquatorialRadiusKm = 6378.1363      // semi-major axis (km)
	Eccentricity       = 0.081819221456 // first eccentricity
)

// PolarRadiusKm returns the semi-minor axis R_E*(1-e^2)/sqrt(1-e^2).
func PolarRadiusKm() float64 {
	re, ecc := EquatorialRadiusKm, Eccentricity
	e2 := ecc * ecc
	return re * (1 - e2) / math.Sqrt(1-e2)
}

// RotateSEZ rotates an SEZ vector into ECEF-aligned axes at the given
// geodetic latitude and longitude (radians). No translation is applied.
func RotateSEZ(v types.SEZ, latRad, lonRad float64) types.ECEF {
	sinLat, cosLat := math.Sin(latRad), math.Cos(latRad)
	sinLon, cosLon := math.Sin(lonRad), math.Cos(lonRad)

	return types.ECEF{
		X: cosLon*sinLat*v.S + cosLon*cosLat*v.Z - sinLon*v.E,
		Y: sinLon*sinLat*v.S + sinLon*cosLat*v.Z + cosLon*v.E,
		Z: -cosLat*v.S + sinLat*v.Z,
	}
}

// ObservatoryECEF returns the ECEF position of a point on or above the
// reference ellipsoid.
func ObservatoryECEF(obs types.Geodetic) types.ECEF {
	lat := obs.LatDeg * math.Pi / 180
	lon := obs.LonDeg * math.Pi / 180
	return observatoryECEF(lat, lon, obs.HeightKm)
}

func observatoryECEF(lat, lon, heightKm float64) types.ECEF {
	// Variables, not constants: products must round at float64 precision.
	re, ecc := EquatorialRadiusKm, Eccentricity

	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	sinLon, cosLon := math.Sin(lon), math.Cos(lon)

	denom := math.Sqrt(1.0 - (ecc*ecc)*(sinLat*sinLat))

	// Radius of curvature in the prime vertical, and its polar counterpart.
	cE := re / denom
	sE := (re * (1 - ecc*ecc)) / denom

	return types.ECEF{
		X: (cE + heightKm) * cosLat * cosLon,
		Y: (cE + heightKm) * cosLat * sinLon,
		Z: (sE + heightKm) * sinLat,
	}
}

// SEZToECEF converts the SEZ vector v, observed from obs, into an absolute
// ECEF position. Latitude and longitude are not range checked.
func SEZToECEF(obs types.Geodetic, v types.SEZ) types.ECEF {
	lon := obs.LonDeg * math.Pi / 180
	lat := obs.LatDeg * math.Pi / 180

	offset := RotateSEZ(v, lat, lon)
	origin := observatoryECEF(lat, lon, obs.HeightKm)
	return offset.Add(origin)
}
