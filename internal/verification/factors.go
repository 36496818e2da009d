package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"attendance-verify-backend/internal/face"
	"attendance-verify-backend/internal/geo"
	"attendance-verify-backend/internal/model"
	"attendance-verify-backend/internal/qrtoken"
)

// Signals are the raw, untrusted client-supplied inputs for one attempt.
type Signals struct {
	Latitude       *float64
	Longitude      *float64
	AccuracyMeters float64
	Token          string
	EgressIP       string
	Probe          []byte
	ProbePath      string
	Comment        string
	DeviceID       string
}

// HasCoordinates reports whether both coordinates are present and finite.
func (s Signals) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil &&
		geo.IsFinite(*s.Latitude, *s.Longitude)
}

// Factors are the independent boolean verifications. FaceIdentity is
// informational detail of the photo factor, not a fifth MFA factor.
type Factors struct {
	Location     bool `json:"location_verified"`
	Token        bool `json:"token_verified"`
	Network      bool `json:"network_verified"`
	Photo        bool `json:"photo_verified"`
	FaceIdentity bool `json:"face_verified"`
}

// FaceDetail is the oracle verdict surfaced to the client report.
type FaceDetail struct {
	Matched    bool    `json:"matched"`
	Similarity float64 `json:"similarity"`
	Confidence float64 `json:"confidence"`
}

// TokenVerifier is the external signed-token verifier. Implemented by
// qrtoken.Signer; the evaluator never signs anything itself.
type TokenVerifier interface {
	Verify(token string) *qrtoken.Claims
}

// FactorEvaluator turns raw signals into the per-factor booleans. Pure
// computation over its inputs, except for the one face oracle call.
type FactorEvaluator struct {
	policy Policy
	tokens TokenVerifier
	oracle face.Oracle
	logger *slog.Logger
}

func NewFactorEvaluator(policy Policy, tokens TokenVerifier, oracle face.Oracle, logger *slog.Logger) *FactorEvaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FactorEvaluator{policy: policy, tokens: tokens, oracle: oracle, logger: logger}
}

// EvaluateLocation: koordinat harus angka valid, jarak dalam radius kantor,
// dan accuracy GPS masih masuk akal.
func (e *FactorEvaluator) EvaluateLocation(sig Signals, distanceMeters, maxDistanceMeters float64) bool {
	if !sig.HasCoordinates() {
		return false
	}
	return distanceMeters <= maxDistanceMeters && sig.AccuracyMeters <= e.policy.MaxAccuracyMeters
}

// EvaluateToken: token ada, decode sukses, belum expired, dan office id di
// dalam claim sama dengan kantor pegawai. Tanpa token = false, bukan error.
func (e *FactorEvaluator) EvaluateToken(token string, officeID uint) bool {
	if token == "" {
		return false
	}
	claims := e.tokens.Verify(token)
	if claims == nil {
		return false
	}
	return claims.OfficeID == officeID
}

// EvaluateNetwork: egress IP ada di allow-list, atau list memuat wildcard.
func (e *FactorEvaluator) EvaluateNetwork(egressIP string) bool {
	for _, trusted := range e.policy.TrustedEgressIPs {
		if trusted == TrustAnyEgress || trusted == egressIP {
			return true
		}
	}
	return false
}

// EvaluatePhoto runs the two-tier photo/face check.
//
// Unenrolled subject: presence-only, no identity claim.
// Enrolled subject: probe is mandatory; the oracle decides. Unavailable
// oracle degrades to presence-only with an explicit log signal. A technical
// failure, a non-match, or a match for a different identity is a hard gate
// (*DenialError), never a soft factor=false.
func (e *FactorEvaluator) EvaluatePhoto(ctx context.Context, sig Signals, employee *model.Employee) (photo bool, faceIdentity bool, detail *FaceDetail, err error) {
	if !employee.FaceEnrolled() {
		return len(sig.Probe) > 0, false, nil, nil
	}

	if len(sig.Probe) == 0 {
		return false, false, nil, &DenialError{
			Reason:  DenyFaceProbeMissing,
			Message: "employee has an enrolled face template, probe photo is mandatory",
		}
	}

	match, oracleErr := e.oracle.Verify(ctx, sig.Probe, employee.ID)
	if oracleErr != nil {
		if isUnavailable(oracleErr) {
			// Mode degradasi: cek kehadiran foto saja, jangan pura-pura
			// faktor identitas wajah lolos.
			e.logger.Warn("face oracle unavailable, degrading photo factor to presence-only",
				"employee_id", employee.ID, "error", oracleErr.Error())
			return true, false, nil, nil
		}
		return false, false, nil, &DenialError{
			Reason:  DenyFaceOracleError,
			Message: fmt.Sprintf("face verification call failed: %v", oracleErr),
		}
	}

	detail = &FaceDetail{
		Matched:    match.Matched,
		Similarity: match.Similarity,
		Confidence: match.Confidence,
	}

	if !match.Matched || match.EmployeeID != employee.ID {
		return false, false, detail, &DenialError{
			Reason:  DenyFaceMismatch,
			Message: "probe photo does not match the claimed identity",
		}
	}

	return true, true, detail, nil
}

func isUnavailable(err error) bool {
	return errors.Is(err, face.ErrUnavailable)
}
