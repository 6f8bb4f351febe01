package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var office = Point{Lat: 27.7172, Lng: 85.3240}

func TestDistance_SamePoint(t *testing.T) {
	d, err := Distance(office, office)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestDistance_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude is ~111.19 km on the spherical approximation.
	d, err := Distance(Point{Lat: 0, Lng: 0}, Point{Lat: 1, Lng: 0})
	require.NoError(t, err)
	assert.InDelta(t, 111194.9, d, 1.0)
}

func TestDistance_NearOffice(t *testing.T) {
	// ~40 m north of the office
	d, err := Distance(office, Point{Lat: office.Lat + 0.00036, Lng: office.Lng})
	require.NoError(t, err)
	assert.InDelta(t, 40.0, d, 1.0)
}

func TestDistance_InvalidCoordinates(t *testing.T) {
	cases := []struct {
		name string
		p    Point
	}{
		{"lat too high", Point{Lat: 90.0001, Lng: 0}},
		{"lat too low", Point{Lat: -90.0001, Lng: 0}},
		{"lng too high", Point{Lat: 0, Lng: 180.0001}},
		{"lng too low", Point{Lat: 0, Lng: -180.0001}},
		{"lat NaN", Point{Lat: math.NaN(), Lng: 0}},
		{"lng infinite", Point{Lat: 0, Lng: math.Inf(1)}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Distance(office, c.p)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)

			_, err = Distance(c.p, office)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestIsWithinRange_Boundary(t *testing.T) {
	v := NewValidator(office, 100)

	assert.True(t, v.IsWithinRange(0))
	assert.True(t, v.IsWithinRange(99.99))
	assert.True(t, v.IsWithinRange(100.00))
	assert.False(t, v.IsWithinRange(100.01))
}

func TestValidator_DistanceFromOffice(t *testing.T) {
	v := NewValidator(office, 100)

	d, err := v.DistanceFromOffice(Point{Lat: office.Lat + 0.01, Lng: office.Lng})
	require.NoError(t, err)
	assert.False(t, v.IsWithinRange(d))
	assert.InDelta(t, 1112.0, d, 2.0)
}
