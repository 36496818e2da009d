package verification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"attendance-verify-backend/internal/geo"
	"attendance-verify-backend/internal/model"

	"github.com/google/uuid"
)

// EventStore is the append-only persistence the recorder needs. Implemented
// by repository.AttendanceRepository.
type EventStore interface {
	Create(event *model.AttendanceEvent) error
}

// Notifier receives persisted suspicious events. Best effort, after persist.
type Notifier interface {
	NotifySuspicious(event *model.AttendanceEvent, reasons []string)
}

// Report is the client-facing verification result for one recorded event.
type Report struct {
	ReferenceID      string      `json:"reference_id"`
	Kind             string      `json:"kind"`
	Timestamp        time.Time   `json:"timestamp"`
	Factors          Factors     `json:"factors"`
	PassedCount      int         `json:"passed_count"`
	Verified         bool        `json:"verified"`
	IsSuspicious     bool        `json:"is_suspicious"`
	SuspicionReasons []string    `json:"suspicion_reasons"`
	IsLate           bool        `json:"is_late"`
	IsEarlyLeave     bool        `json:"is_early_leave"`
	DistanceMeters   float64     `json:"distance_meters"`
	Face             *FaceDetail `json:"face,omitempty"`
}

// Recorder sequences the whole verification: factors, presence hard gate,
// photo/face tier, spoofing detection, MFA decision, time classification, and
// the single append-only write. Every attempt is an independent request-scoped
// computation: there is no shared mutable state, so concurrent check-ins are
// safe without coordination.
type Recorder struct {
	policy    Policy
	store     EventStore
	evaluator *FactorEvaluator
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
}

func NewRecorder(policy Policy, store EventStore, evaluator *FactorEvaluator, notifier Notifier, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		policy:    policy,
		store:     store,
		evaluator: evaluator,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// CheckIn records a check-in event: full sequence including the photo/face tier.
func (r *Recorder) CheckIn(ctx context.Context, employee *model.Employee, office *model.Office, sig Signals) (*Report, error) {
	return r.record(ctx, model.EventCheckIn, employee, office, sig)
}

// CheckOut mirrors check-in but skips the photo/face tier entirely and uses
// the afternoon cutoff for classification.
func (r *Recorder) CheckOut(ctx context.Context, employee *model.Employee, office *model.Office, sig Signals) (*Report, error) {
	return r.record(ctx, model.EventCheckOut, employee, office, sig)
}

func (r *Recorder) record(ctx context.Context, kind string, employee *model.Employee, office *model.Office, sig Signals) (*Report, error) {
	now := r.now()

	// 0. Validasi input wajib: pegawai yang sudah enroll wajah WAJIB kirim
	//    foto probe saat check-in. Short-circuit sebelum evaluasi faktor.
	if kind == model.EventCheckIn && employee.FaceEnrolled() && len(sig.Probe) == 0 {
		return nil, &DenialError{
			Reason:   DenyFaceProbeMissing,
			Message:  "employee has an enrolled face template, probe photo is mandatory",
			EgressIP: sig.EgressIP,
		}
	}

	// 1. Hitung jarak ke kantor. Tanpa koordinat valid jarak dianggap 0,
	//    hanya dipakai untuk perhitungan suspicion di bawah.
	distance := 0.0
	if sig.HasCoordinates() {
		distance = geo.DistanceMeters(*sig.Latitude, *sig.Longitude, office.Latitude, office.Longitude)
	}

	// Radius kantor menang atas default policy kalau diset
	maxDistance := r.policy.MaxDistanceMeters
	if office.RadiusMeter > 0 {
		maxDistance = office.RadiusMeter
	}

	// 2. Faktor lokasi / jaringan / token
	factors := Factors{
		Location: r.evaluator.EvaluateLocation(sig, distance, maxDistance),
		Token:    r.evaluator.EvaluateToken(sig.Token, office.ID),
		Network:  r.evaluator.EvaluateNetwork(sig.EgressIP),
	}

	// 3. Hard gate kehadiran: tidak di lokasi DAN tidak di jaringan kantor
	//    berarti ditolak, berapapun skor faktor lainnya.
	if !factors.Location && !factors.Network {
		return nil, &DenialError{
			Reason: DenyPresenceGate,
			Message: fmt.Sprintf("neither location (%.0fm away, accuracy %.0fm) nor network (%s) places the employee at the workplace",
				distance, sig.AccuracyMeters, sig.EgressIP),
			DistanceMeters:    distance,
			AccuracyMeters:    sig.AccuracyMeters,
			MaxDistanceMeters: maxDistance,
			MaxAccuracyMeters: r.policy.MaxAccuracyMeters,
			EgressIP:          sig.EgressIP,
			LocationVerified:  factors.Location,
			NetworkVerified:   factors.Network,
		}
	}

	// 4. Tier foto/wajah, hanya untuk check-in. Bisa hard-fail.
	var faceDetail *FaceDetail
	if kind == model.EventCheckIn {
		photo, faceIdentity, detail, err := r.evaluator.EvaluatePhoto(ctx, sig, employee)
		if err != nil {
			return nil, err
		}
		factors.Photo = photo
		factors.FaceIdentity = faceIdentity
		faceDetail = detail
	}

	// 5. Deteksi spoofing: murni metadata audit, bukan gate
	reasons := DetectSpoofing(distance, sig.AccuracyMeters, r.policy)

	// 6. Keputusan MFA
	verified := Decide(factors, r.policy.RequiredFactorCount)

	// 7. Klasifikasi waktu
	isLate := kind == model.EventCheckIn && IsLate(now, r.policy)
	isEarlyLeave := kind == model.EventCheckOut && IsEarlyLeave(now, r.policy)

	// 8. Bangun record immutable dan simpan satu kali
	event := &model.AttendanceEvent{
		ReferenceID:      uuid.NewString(),
		EmployeeID:       employee.ID,
		OfficeID:         office.ID,
		Kind:             kind,
		Timestamp:        now,
		Latitude:         sig.Latitude,
		Longitude:        sig.Longitude,
		AccuracyMeters:   sig.AccuracyMeters,
		DistanceMeters:   distance,
		EgressIP:         sig.EgressIP,
		DeviceID:         sig.DeviceID,
		Comment:          sig.Comment,
		PhotoPath:        sig.ProbePath,
		LocationVerified: factors.Location,
		TokenVerified:    factors.Token,
		NetworkVerified:  factors.Network,
		PhotoVerified:    factors.Photo,
		FaceVerified:     factors.FaceIdentity,
		Verified:         verified,
		IsSuspicious:     len(reasons) > 0,
		IsLate:           isLate,
		IsEarlyLeave:     isEarlyLeave,
	}
	if err := event.SetSuspicionReasons(reasons); err != nil {
		return nil, err
	}
	if faceDetail != nil {
		event.FaceSimilarity = &faceDetail.Similarity
		event.FaceConfidence = &faceDetail.Confidence
	}

	if err := r.store.Create(event); err != nil {
		return nil, fmt.Errorf("saving attendance event: %w", err)
	}

	if event.IsSuspicious {
		r.logger.Warn("suspicious attendance event recorded",
			"reference_id", event.ReferenceID,
			"employee_id", employee.ID,
			"kind", kind,
			"reasons", reasons)
		if r.notifier != nil {
			r.notifier.NotifySuspicious(event, reasons)
		}
	}

	return &Report{
		ReferenceID:      event.ReferenceID,
		Kind:             kind,
		Timestamp:        now,
		Factors:          factors,
		PassedCount:      factors.PassedCount(),
		Verified:         verified,
		IsSuspicious:     event.IsSuspicious,
		SuspicionReasons: reasons,
		IsLate:           isLate,
		IsEarlyLeave:     isEarlyLeave,
		DistanceMeters:   distance,
		Face:             faceDetail,
	}, nil
}
