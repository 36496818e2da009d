package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

const (
	EventCheckIn  = "check-in"
	EventCheckOut = "check-out"
)

// AttendanceEvent is one verification attempt. A row is written exactly once
// by the recorder and never updated: the factor flags and the verified outcome
// are fixed at creation time, even if policy thresholds change later.
type AttendanceEvent struct {
	gorm.Model
	ReferenceID string    `json:"reference_id" gorm:"size:36;uniqueIndex"`
	EmployeeID  uint      `json:"employee_id" gorm:"index"`
	OfficeID    uint      `json:"office_id"`
	Kind        string    `json:"kind"` // check-in | check-out
	Timestamp   time.Time `json:"timestamp"`

	// Raw signals as the client reported them
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	AccuracyMeters float64  `json:"accuracy_meters"`
	DistanceMeters float64  `json:"distance_meters"`
	EgressIP       string   `json:"egress_ip"`
	DeviceID       string   `json:"device_id"`
	Comment        string   `json:"comment"`
	PhotoPath      string   `json:"photo_path"`

	// Per-factor flags + aggregate outcome
	LocationVerified bool `json:"location_verified"`
	TokenVerified    bool `json:"token_verified"`
	NetworkVerified  bool `json:"network_verified"`
	PhotoVerified    bool `json:"photo_verified"`
	FaceVerified     bool `json:"face_verified"`
	Verified         bool `json:"verified"`

	IsSuspicious     bool            `json:"is_suspicious"`
	SuspicionReasons json.RawMessage `json:"suspicion_reasons" gorm:"type:json"`

	FaceSimilarity *float64 `json:"face_similarity"`
	FaceConfidence *float64 `json:"face_confidence"`

	IsLate       bool `json:"is_late"`
	IsEarlyLeave bool `json:"is_early_leave"`
}

// SetSuspicionReasons serializes the ordered reason list into the json column.
func (a *AttendanceEvent) SetSuspicionReasons(reasons []string) error {
	if len(reasons) == 0 {
		a.SuspicionReasons = nil
		return nil
	}
	raw, err := json.Marshal(reasons)
	if err != nil {
		return err
	}
	a.SuspicionReasons = raw
	return nil
}

// GetSuspicionReasons decodes the json column back into a slice.
func (a *AttendanceEvent) GetSuspicionReasons() []string {
	if len(a.SuspicionReasons) == 0 {
		return nil
	}
	var reasons []string
	if err := json.Unmarshal(a.SuspicionReasons, &reasons); err != nil {
		return nil
	}
	return reasons
}
