package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	d := DistanceMeters(-6.2088, 106.8456, -6.2088, 106.8456)
	assert.Equal(t, 0.0, d)
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Monas -> Istiqlal, kurang lebih 650m
	d := DistanceMeters(-6.1754, 106.8272, -6.1702, 106.8310)
	assert.InDelta(t, 715, d, 100)
}

func TestDistanceMeters_OneDegreeLatitude(t *testing.T) {
	// 1 derajat latitude ~ 111.2 km di semua longitude
	d := DistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := DistanceMeters(-6.2, 106.8, -6.3, 106.9)
	b := DistanceMeters(-6.3, 106.9, -6.2, 106.8)
	assert.InDelta(t, a, b, 0.0001)
	assert.True(t, a > 0)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(-6.2, 106.8))
	assert.False(t, IsFinite(math.NaN(), 106.8))
	assert.False(t, IsFinite(-6.2, math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1), math.NaN()))
}
