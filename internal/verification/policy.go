package verification

import "time"

// TrustAnyEgress is the wildcard entry for the trusted network list.
const TrustAnyEgress = "*"

// Policy holds every threshold the verification core uses. It is built once
// at startup and passed by value; nothing mutates it at runtime, so distinct
// threshold sets can be supplied per test case.
//
// MaxDistanceMeters (MFA location factor) and SpoofDistanceMeters (suspicion
// plausibility ceiling) are deliberately independent knobs: an event can pass
// the location factor and still be flagged suspicious for distance.
type Policy struct {
	RequiredFactorCount  int
	MaxDistanceMeters    float64
	MaxAccuracyMeters    float64
	TrustedEgressIPs     []string
	LateCutoffHour       int
	EarlyLeaveCutoffHour int
	SpoofDistanceMeters  float64

	// Timezone is the explicit location for the late/early-leave cutoffs.
	// Never the host locale.
	Timezone *time.Location
}

// DefaultPolicy are the values used when no environment overrides exist.
func DefaultPolicy() Policy {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.UTC
	}
	return Policy{
		RequiredFactorCount:  2,
		MaxDistanceMeters:    300,
		MaxAccuracyMeters:    500,
		TrustedEgressIPs:     nil,
		LateCutoffHour:       10,
		EarlyLeaveCutoffHour: 17,
		SpoofDistanceMeters:  200,
		Timezone:             loc,
	}
}
