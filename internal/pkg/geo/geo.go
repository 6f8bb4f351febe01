package geo

import (
	"errors"
	"math"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Point is a WGS84 latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Validate rejects non-finite or out-of-range coordinates.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return ErrInvalidCoordinate
	}
	if p.Lat < -90 || p.Lat > 90 {
		return ErrInvalidCoordinate
	}
	if p.Lng < -180 || p.Lng > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// Distance returns the great-circle distance between two points in meters,
// using the haversine formula on a spherical Earth approximation.
func Distance(a, b Point) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180.0)

	latARad := a.Lat * (math.Pi / 180.0)
	latBRad := b.Lat * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(latARad)*math.Cos(latBRad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c, nil
}

// Validator classifies request coordinates against a fixed office location
// and radius.
type Validator struct {
	office       Point
	radiusMeters float64
}

func NewValidator(office Point, radiusMeters float64) *Validator {
	return &Validator{office: office, radiusMeters: radiusMeters}
}

// DistanceFromOffice returns the distance in meters from the office location.
func (v *Validator) DistanceFromOffice(p Point) (float64, error) {
	return Distance(v.office, p)
}

// IsWithinRange reports whether a measured distance falls inside the
// geofence. The boundary itself counts as inside.
func (v *Validator) IsWithinRange(distanceMeters float64) bool {
	return distanceMeters <= v.radiusMeters
}
