package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSpoofing_CleanSignals(t *testing.T) {
	reasons := DetectSpoofing(30, 20, testPolicy())
	assert.Empty(t, reasons)
}

func TestDetectSpoofing_AccuracyTooLow(t *testing.T) {
	reasons := DetectSpoofing(30, 600, testPolicy())
	assert.Equal(t, []string{ReasonAccuracyTooLow}, reasons)
}

func TestDetectSpoofing_DistanceOutOfRange(t *testing.T) {
	reasons := DetectSpoofing(250, 20, testPolicy())
	assert.Equal(t, []string{ReasonDistanceOutOfRange}, reasons)
}

func TestDetectSpoofing_MultipleReasonsCoOccur(t *testing.T) {
	reasons := DetectSpoofing(999, 999, testPolicy())
	assert.Equal(t, []string{ReasonAccuracyTooLow, ReasonDistanceOutOfRange}, reasons)
}

func TestDetectSpoofing_IndependentThresholds(t *testing.T) {
	// Plausibility ceiling (200m) sengaja lebih ketat dari MFA max distance
	// (300m): jarak 250m bisa lolos faktor lokasi TAPI tetap suspicious.
	policy := testPolicy()
	reasons := DetectSpoofing(250, 20, policy)
	assert.Contains(t, reasons, ReasonDistanceOutOfRange)
	assert.True(t, 250 <= policy.MaxDistanceMeters)
}

func TestDetectSpoofing_BoundaryValues(t *testing.T) {
	policy := testPolicy()
	// Tepat di threshold belum suspicious
	assert.Empty(t, DetectSpoofing(policy.SpoofDistanceMeters, policy.MaxAccuracyMeters, policy))
	assert.Len(t, DetectSpoofing(policy.SpoofDistanceMeters+1, policy.MaxAccuracyMeters+1, policy), 2)
}
