package verification

import "time"

// IsLate: check-in pada atau setelah jam cutoff pagi dihitung terlambat.
// Dievaluasi di timezone policy, bukan locale host.
func IsLate(t time.Time, policy Policy) bool {
	return t.In(policy.Timezone).Hour() >= policy.LateCutoffHour
}

// IsEarlyLeave: check-out sebelum jam cutoff sore dihitung pulang cepat.
func IsEarlyLeave(t time.Time, policy Policy) bool {
	return t.In(policy.Timezone).Hour() < policy.EarlyLeaveCutoffHour
}
