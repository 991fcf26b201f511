// Package geo implements the spherical-cap math behind nearby-report
// lookups: haversine distances and bounding boxes sized from an angular
// radius.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used to convert between linear
// and angular distances.
const EarthRadiusKm = 6371.0

// ValidLongitude reports whether lng is a finite value in [-180, 180].
func ValidLongitude(lng float64) bool {
	return !math.IsNaN(lng) && !math.IsInf(lng, 0) && lng >= -180 && lng <= 180
}

// ValidLatitude reports whether lat is a finite value in [-90, 90].
func ValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && !math.IsInf(lat, 0) && lat >= -90 && lat <= 90
}

// DistanceKm returns the haversine great-circle distance in kilometers
// between two (latitude, longitude) points.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180

	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBox is a latitude/longitude rectangle guaranteed to contain a
// spherical cap. It is a coarse, index-served prefilter; candidates still
// need the exact DistanceKm check.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// CapBoundingBox returns the bounding box of the spherical cap centered
// at (lat, lng) with the given radius in kilometers. Near the poles or
// across the antimeridian the box widens to the full longitude range.
func CapBoundingBox(lat, lng, radiusKm float64) BoundingBox {
	angular := radiusKm / EarthRadiusKm
	deltaLatDeg := angular * 180 / math.Pi

	box := BoundingBox{
		MinLat: lat - deltaLatDeg,
		MaxLat: lat + deltaLatDeg,
	}

	if box.MinLat <= -90 || box.MaxLat >= 90 {
		box.MinLat = math.Max(box.MinLat, -90)
		box.MaxLat = math.Min(box.MaxLat, 90)
		box.MinLng, box.MaxLng = -180, 180
		return box
	}

	// Longitude delta grows with latitude.
	deltaLngDeg := math.Asin(math.Sin(angular)/math.Cos(lat*math.Pi/180)) * 180 / math.Pi
	if math.IsNaN(deltaLngDeg) {
		box.MinLng, box.MaxLng = -180, 180
		return box
	}

	box.MinLng = lng - deltaLngDeg
	box.MaxLng = lng + deltaLngDeg
	if box.MinLng < -180 || box.MaxLng > 180 {
		box.MinLng, box.MaxLng = -180, 180
	}
	return box
}
