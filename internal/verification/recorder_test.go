package verification

import (
	"context"
	"testing"
	"time"

	"attendance-verify-backend/internal/face"
	"attendance-verify-backend/internal/model"
	"attendance-verify-backend/internal/qrtoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	events []*model.AttendanceEvent
}

func (f *fakeStore) Create(event *model.AttendanceEvent) error {
	f.events = append(f.events, event)
	return nil
}

type fakeNotifier struct {
	calls int
}

func (f *fakeNotifier) NotifySuspicious(event *model.AttendanceEvent, reasons []string) {
	f.calls++
}

func testOffice() *model.Office {
	office := &model.Office{
		Name:      "Kantor Pusat",
		Latitude:  -6.2088,
		Longitude: 106.8456,
		// RadiusMeter 0: pakai MaxDistanceMeters dari policy
	}
	office.ID = 7
	return office
}

func testEmployee(enrolled bool) *model.Employee {
	employee := &model.Employee{Name: "Budi", NIP: "1987654321"}
	employee.ID = 5
	employee.OfficeID = 7
	if enrolled {
		employee.FaceTemplateID = "tpl-1"
	}
	return employee
}

// coordsAtDistance geser latitude supaya jaraknya kira-kira meters dari kantor.
func coordsAtDistance(office *model.Office, meters float64) (lat, lng float64) {
	return office.Latitude + meters/111195.0, office.Longitude
}

func newTestRecorder(policy Policy, store *fakeStore, oracle face.Oracle, verifier TokenVerifier, notifier Notifier) *Recorder {
	evaluator := NewFactorEvaluator(policy, verifier, oracle, quietLogger())
	return NewRecorder(policy, store, evaluator, notifier, quietLogger())
}

// Scenario A: lokasi valid tapi cuma 1 faktor => tersimpan, verified=false.
func TestCheckIn_LocationOnlyIsPersistedButUnverified(t *testing.T) {
	policy := testPolicy()
	policy.MaxDistanceMeters = 100
	policy.MaxAccuracyMeters = 80
	policy.TrustedEgressIPs = nil

	store := &fakeStore{}
	rec := newTestRecorder(policy, store, &fakeOracle{}, &fakeTokenVerifier{}, nil)

	office := testOffice()
	lat, lng := coordsAtDistance(office, 30)
	report, err := rec.CheckIn(context.Background(), testEmployee(false), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 20,
		EgressIP:       "8.8.8.8",
	})
	require.NoError(t, err)

	assert.True(t, report.Factors.Location)
	assert.False(t, report.Factors.Token)
	assert.False(t, report.Factors.Network)
	assert.False(t, report.Factors.Photo)
	assert.Equal(t, 1, report.PassedCount)
	assert.False(t, report.Verified)
	assert.False(t, report.IsSuspicious)
	require.Len(t, store.events, 1)
	assert.Equal(t, model.EventCheckIn, store.events[0].Kind)
	assert.False(t, store.events[0].Verified)
}

// Scenario B: lokasi dan jaringan dua-duanya gagal => hard gate, nol tulisan DB.
func TestCheckIn_PresenceGateRejectsWithoutPersisting(t *testing.T) {
	policy := testPolicy()
	policy.MaxDistanceMeters = 300
	policy.MaxAccuracyMeters = 500
	policy.TrustedEgressIPs = nil

	store := &fakeStore{}
	rec := newTestRecorder(policy, store, &fakeOracle{}, &fakeTokenVerifier{}, nil)

	office := testOffice()
	lat, lng := coordsAtDistance(office, 500)
	_, err := rec.CheckIn(context.Background(), testEmployee(false), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 600,
		EgressIP:       "8.8.8.8",
	})

	var denial *DenialError
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, DenyPresenceGate, denial.Reason)
	assert.False(t, denial.LocationVerified)
	assert.False(t, denial.NetworkVerified)
	assert.Equal(t, "8.8.8.8", denial.EgressIP)
	assert.InDelta(t, 500, denial.DistanceMeters, 5)
	assert.Equal(t, 300.0, denial.MaxDistanceMeters)
	assert.Empty(t, store.events)
}

func TestCheckOut_PresenceGateAlsoApplies(t *testing.T) {
	policy := testPolicy()
	policy.TrustedEgressIPs = nil

	store := &fakeStore{}
	rec := newTestRecorder(policy, store, &fakeOracle{}, &fakeTokenVerifier{}, nil)

	office := testOffice()
	lat, lng := coordsAtDistance(office, 5000)
	_, err := rec.CheckOut(context.Background(), testEmployee(false), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 20,
		EgressIP:       "8.8.8.8",
	})

	var denial *DenialError
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, DenyPresenceGate, denial.Reason)
	assert.Empty(t, store.events)
}

// Scenario C: enrolled + wajah cocok + lokasi + token => verified.
func TestCheckIn_EnrolledFaceMatchVerified(t *testing.T) {
	policy := testPolicy()
	policy.TrustedEgressIPs = nil

	store := &fakeStore{}
	verifier := &fakeTokenVerifier{claims: &qrtoken.Claims{OfficeID: 7, ExpiresAt: time.Now().Add(time.Minute)}}
	oracle := &fakeOracle{match: &face.Match{Matched: true, EmployeeID: 5, Similarity: 97, Confidence: 93}}
	rec := newTestRecorder(policy, store, oracle, verifier, nil)

	office := testOffice()
	lat, lng := coordsAtDistance(office, 30)
	report, err := rec.CheckIn(context.Background(), testEmployee(true), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 20,
		Token:          "qr-token",
		EgressIP:       "8.8.8.8",
		Probe:          []byte("jpg"),
	})
	require.NoError(t, err)

	assert.True(t, report.Factors.Location)
	assert.True(t, report.Factors.Token)
	assert.True(t, report.Factors.Photo)
	assert.True(t, report.Factors.FaceIdentity)
	assert.GreaterOrEqual(t, report.PassedCount, 3)
	assert.True(t, report.Verified)
	require.NotNil(t, report.Face)
	assert.True(t, report.Face.Matched)
	assert.Equal(t, 97.0, report.Face.Similarity)

	require.Len(t, store.events, 1)
	event := store.events[0]
	assert.True(t, event.Verified)
	assert.True(t, event.FaceVerified)
	require.NotNil(t, event.FaceSimilarity)
	assert.Equal(t, 97.0, *event.FaceSimilarity)
}

func TestCheckIn_EnrolledWithoutProbeRejectedBeforeFactors(t *testing.T) {
	store := &fakeStore{}
	// Oracle yang panik kalau dipanggil tidak perlu: cukup cek calls == 0
	oracle := &fakeOracle{}
	rec := newTestRecorder(testPolicy(), store, oracle, &fakeTokenVerifier{}, nil)

	office := testOffice()
	lat, lng := coordsAtDistance(office, 10)
	_, err := rec.CheckIn(context.Background(), testEmployee(true), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 10,
		EgressIP:       "10.0.0.1",
	})

	var denial *DenialError
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, DenyFaceProbeMissing, denial.Reason)
	assert.Equal(t, 0, oracle.calls)
	assert.Empty(t, store.events)
}

func TestCheckIn_FaceMismatchRejectedWithoutPersisting(t *testing.T) {
	store := &fakeStore{}
	oracle := &fakeOracle{match: &face.Match{Matched: true, EmployeeID: 99, Similarity: 95, Confidence: 90}}
	rec := newTestRecorder(testPolicy(), store, oracle, &fakeTokenVerifier{}, nil)

	office := testOffice()
	lat, lng := coordsAtDistance(office, 10)
	_, err := rec.CheckIn(context.Background(), testEmployee(true), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 10,
		EgressIP:       "10.0.0.1",
		Probe:          []byte("jpg"),
	})

	var denial *DenialError
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, DenyFaceMismatch, denial.Reason)
	assert.Empty(t, store.events)
}

func TestCheckIn_OracleUnavailableDegradesAndPersists(t *testing.T) {
	store := &fakeStore{}
	oracle := &fakeOracle{err: face.ErrUnavailable}
	rec := newTestRecorder(testPolicy(), store, oracle, &fakeTokenVerifier{}, nil)

	office := testOffice()
	lat, lng := coordsAtDistance(office, 10)
	report, err := rec.CheckIn(context.Background(), testEmployee(true), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 10,
		EgressIP:       "10.0.0.1",
		Probe:          []byte("jpg"),
	})
	require.NoError(t, err)

	assert.True(t, report.Factors.Photo)
	assert.False(t, report.Factors.FaceIdentity)
	assert.Nil(t, report.Face)
	require.Len(t, store.events, 1)
}

func TestCheckOut_SkipsPhotoTierEntirely(t *testing.T) {
	store := &fakeStore{}
	oracle := &fakeOracle{match: &face.Match{Matched: true, EmployeeID: 5, Similarity: 97, Confidence: 93}}
	rec := newTestRecorder(testPolicy(), store, oracle, &fakeTokenVerifier{}, nil)

	office := testOffice()
	lat, lng := coordsAtDistance(office, 10)
	report, err := rec.CheckOut(context.Background(), testEmployee(true), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 10,
		EgressIP:       "10.0.0.1",
		Probe:          []byte("jpg"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, oracle.calls)
	assert.False(t, report.Factors.Photo)
	assert.False(t, report.Factors.FaceIdentity)
	assert.Nil(t, report.Face)
	require.Len(t, store.events, 1)
	assert.Equal(t, model.EventCheckOut, store.events[0].Kind)
}

// Scenario D: klasifikasi waktu independen dari hasil verifikasi.
func TestTimeClassification_OnRecordedEvents(t *testing.T) {
	policy := testPolicy()
	store := &fakeStore{}
	rec := newTestRecorder(policy, store, &fakeOracle{}, &fakeTokenVerifier{}, nil)
	rec.now = func() time.Time { return time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC) }

	office := testOffice()
	lat, lng := coordsAtDistance(office, 10)
	sig := Signals{Latitude: &lat, Longitude: &lng, AccuracyMeters: 10, EgressIP: "8.8.8.8"}

	report, err := rec.CheckIn(context.Background(), testEmployee(false), office, sig)
	require.NoError(t, err)
	assert.True(t, report.IsLate)
	assert.False(t, report.IsEarlyLeave)
	assert.False(t, report.Verified) // terlambat tidak tergantung verified

	rec.now = func() time.Time { return time.Date(2026, 3, 2, 16, 45, 0, 0, time.UTC) }
	report, err = rec.CheckOut(context.Background(), testEmployee(false), office, sig)
	require.NoError(t, err)
	assert.True(t, report.IsEarlyLeave)
	assert.False(t, report.IsLate)
}

func TestSuspiciousEvent_ReasonsPersistedAndNotifierCalled(t *testing.T) {
	policy := testPolicy()
	policy.MaxDistanceMeters = 300
	policy.SpoofDistanceMeters = 200

	store := &fakeStore{}
	notifier := &fakeNotifier{}
	rec := newTestRecorder(policy, store, &fakeOracle{}, &fakeTokenVerifier{}, notifier)

	office := testOffice()
	// 250m: lolos faktor lokasi (<=300) tapi melewati plausibility ceiling (200)
	lat, lng := coordsAtDistance(office, 250)
	report, err := rec.CheckIn(context.Background(), testEmployee(false), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 20,
		EgressIP:       "8.8.8.8",
	})
	require.NoError(t, err)

	assert.True(t, report.Factors.Location)
	assert.True(t, report.IsSuspicious)
	assert.Equal(t, []string{ReasonDistanceOutOfRange}, report.SuspicionReasons)

	require.Len(t, store.events, 1)
	assert.True(t, store.events[0].IsSuspicious)
	assert.Equal(t, []string{ReasonDistanceOutOfRange}, store.events[0].GetSuspicionReasons())
	assert.Equal(t, 1, notifier.calls)
}

func TestRecordedEvent_SuspicionInvariant(t *testing.T) {
	store := &fakeStore{}
	rec := newTestRecorder(testPolicy(), store, &fakeOracle{}, &fakeTokenVerifier{}, nil)

	office := testOffice()
	lat, lng := coordsAtDistance(office, 10)
	_, err := rec.CheckIn(context.Background(), testEmployee(false), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 10,
		EgressIP:       "10.0.0.1",
	})
	require.NoError(t, err)

	// isSuspicious <=> daftar reason tidak kosong
	for _, event := range store.events {
		assert.Equal(t, event.IsSuspicious, len(event.GetSuspicionReasons()) > 0)
	}
}

func TestRecord_MissingCoordinatesDistanceDefaultsToZero(t *testing.T) {
	policy := testPolicy()
	policy.TrustedEgressIPs = []string{"10.0.0.1"}

	store := &fakeStore{}
	rec := newTestRecorder(policy, store, &fakeOracle{}, &fakeTokenVerifier{}, nil)

	// Tanpa koordinat: faktor lokasi false, gate lolos lewat jaringan,
	// jarak 0 sehingga tidak memicu reason distance_out_of_range.
	report, err := rec.CheckIn(context.Background(), testEmployee(false), testOffice(), Signals{
		AccuracyMeters: 10,
		EgressIP:       "10.0.0.1",
	})
	require.NoError(t, err)

	assert.False(t, report.Factors.Location)
	assert.True(t, report.Factors.Network)
	assert.Equal(t, 0.0, report.DistanceMeters)
	assert.False(t, report.IsSuspicious)
	require.Len(t, store.events, 1)
	assert.Equal(t, 0.0, store.events[0].DistanceMeters)
}

func TestRecord_EventFieldsAreComplete(t *testing.T) {
	store := &fakeStore{}
	rec := newTestRecorder(testPolicy(), store, &fakeOracle{}, &fakeTokenVerifier{}, nil)

	office := testOffice()
	lat, lng := coordsAtDistance(office, 10)
	report, err := rec.CheckIn(context.Background(), testEmployee(false), office, Signals{
		Latitude:       &lat,
		Longitude:      &lng,
		AccuracyMeters: 10,
		EgressIP:       "10.0.0.1",
		DeviceID:       "android-xyz",
		Comment:        "masuk pagi",
	})
	require.NoError(t, err)

	require.Len(t, store.events, 1)
	event := store.events[0]
	assert.Equal(t, report.ReferenceID, event.ReferenceID)
	assert.NotEmpty(t, event.ReferenceID)
	assert.Equal(t, uint(5), event.EmployeeID)
	assert.Equal(t, uint(7), event.OfficeID)
	assert.Equal(t, "android-xyz", event.DeviceID)
	assert.Equal(t, "masuk pagi", event.Comment)
	assert.Equal(t, "10.0.0.1", event.EgressIP)
}
