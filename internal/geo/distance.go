package geo

import "math"

// Rumus Haversine untuk menghitung jarak dua titik koordinat (dalam meter).
// Callers are responsible for rejecting NaN/Inf coordinates before calling.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const R = 6371000 // Radius bumi dalam meter

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLng := (lng2 - lng1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

// IsFinite reports whether both coordinates are usable numbers.
func IsFinite(lat, lng float64) bool {
	return !math.IsNaN(lat) && !math.IsInf(lat, 0) &&
		!math.IsNaN(lng) && !math.IsInf(lng, 0)
}
