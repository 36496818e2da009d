package verification

import "fmt"

// Denial reason codes. These are hard gates: the request is rejected before
// anything is persisted, independent of the MFA score.
const (
	DenyPresenceGate     = "presence_gate_failed"
	DenyFaceProbeMissing = "face_probe_required"
	DenyFaceMismatch     = "face_identity_mismatch"
	DenyFaceOracleError  = "face_oracle_error"
)

// DenialError carries the structured rejection payload: which gate failed and
// enough diagnostic detail (distances, thresholds, egress) for an audit trail.
type DenialError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`

	DistanceMeters    float64 `json:"distance_meters"`
	AccuracyMeters    float64 `json:"accuracy_meters"`
	MaxDistanceMeters float64 `json:"max_distance_meters"`
	MaxAccuracyMeters float64 `json:"max_accuracy_meters"`
	EgressIP          string  `json:"egress_ip"`
	LocationVerified  bool    `json:"location_verified"`
	NetworkVerified   bool    `json:"network_verified"`
}

func (e *DenialError) Error() string {
	return fmt.Sprintf("attendance denied (%s): %s", e.Reason, e.Message)
}
