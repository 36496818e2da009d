package verification

// Suspicion reason codes, in the order they are checked.
const (
	ReasonAccuracyTooLow     = "gps_accuracy_too_low"
	ReasonDistanceOutOfRange = "distance_out_of_range"
)

// DetectSpoofing flags physically implausible signals. Advisory audit
// metadata only: it runs whether or not the attempt passed MFA and never
// blocks the event. isSuspicious == (len(reasons) > 0).
func DetectSpoofing(distanceMeters, accuracyMeters float64, policy Policy) []string {
	var reasons []string

	if accuracyMeters > policy.MaxAccuracyMeters {
		reasons = append(reasons, ReasonAccuracyTooLow)
	}
	if distanceMeters > policy.SpoofDistanceMeters {
		reasons = append(reasons, ReasonDistanceOutOfRange)
	}

	return reasons
}
