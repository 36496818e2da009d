package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"attendance-verify-backend/internal/verification"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get environment variable as float with fallback
func GetEnvAsFloat(key string, fallback float64) float64 {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// LoadPolicy builds the immutable verification policy from environment
// variables, falling back to the documented defaults. Called once at startup;
// the resulting value is injected into the verification core, never mutated.
func LoadPolicy() verification.Policy {
	policy := verification.DefaultPolicy()

	policy.RequiredFactorCount = GetEnvAsInt("REQUIRED_FACTOR_COUNT", policy.RequiredFactorCount)
	policy.MaxDistanceMeters = GetEnvAsFloat("MAX_DISTANCE_METERS", policy.MaxDistanceMeters)
	policy.MaxAccuracyMeters = GetEnvAsFloat("MAX_ACCURACY_METERS", policy.MaxAccuracyMeters)
	policy.LateCutoffHour = GetEnvAsInt("LATE_CUTOFF_HOUR", policy.LateCutoffHour)
	policy.EarlyLeaveCutoffHour = GetEnvAsInt("EARLY_LEAVE_CUTOFF_HOUR", policy.EarlyLeaveCutoffHour)
	policy.SpoofDistanceMeters = GetEnvAsFloat("SPOOF_DISTANCE_METERS", policy.SpoofDistanceMeters)

	// Comma separated, boleh mengandung "*" (percaya semua IP)
	if raw := GetEnv("TRUSTED_EGRESS_IPS", ""); raw != "" {
		var trusted []string
		for _, ip := range strings.Split(raw, ",") {
			if ip = strings.TrimSpace(ip); ip != "" {
				trusted = append(trusted, ip)
			}
		}
		policy.TrustedEgressIPs = trusted
	}

	if tz := GetEnv("ATTENDANCE_TIMEZONE", ""); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			policy.Timezone = loc
		}
	}

	return policy
}
