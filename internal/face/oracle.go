// Package face wraps the external face similarity service. The oracle is a
// capability with three distinct outcomes that callers must handle explicitly:
// a result, ErrUnavailable (service not reachable / not configured), or any
// other error (technical failure of a call that did reach the service).
package face

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable means the oracle itself cannot be reached. Callers degrade
// to a presence-only photo check, never treat this as a verified identity.
var ErrUnavailable = errors.New("face oracle unavailable")

// Match is the oracle verdict for one probe image against a claimed identity.
// EmployeeID is the identity the oracle actually recognized, which is not
// necessarily the claimed one.
type Match struct {
	Matched    bool    `json:"matched"`
	EmployeeID uint    `json:"employee_id"`
	Similarity float64 `json:"similarity"` // 0..100
	Confidence float64 `json:"confidence"` // 0..100
}

// Enrollment is the result of registering a face template.
type Enrollment struct {
	TemplateID string  `json:"face_template_id"`
	Confidence float64 `json:"confidence"`
}

type Oracle interface {
	Verify(ctx context.Context, image []byte, claimedEmployeeID uint) (*Match, error)
	Register(ctx context.Context, image []byte, employeeID uint) (*Enrollment, error)
}

// HTTPOracle talks to the face service over JSON/HTTP.
type HTTPOracle struct {
	baseURL string
	client  *http.Client
}

// NewHTTPOracle builds an oracle for the given base URL. An empty URL yields
// an oracle that reports ErrUnavailable on every call, which puts the whole
// photo factor into presence-only mode.
func NewHTTPOracle(baseURL string) *HTTPOracle {
	return &HTTPOracle{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (o *HTTPOracle) Verify(ctx context.Context, image []byte, claimedEmployeeID uint) (*Match, error) {
	var match Match
	err := o.post(ctx, "/api/face/verify", map[string]interface{}{
		"image":       base64.StdEncoding.EncodeToString(image),
		"employee_id": claimedEmployeeID,
	}, &match)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (o *HTTPOracle) Register(ctx context.Context, image []byte, employeeID uint) (*Enrollment, error) {
	var enrollment Enrollment
	err := o.post(ctx, "/api/face/register", map[string]interface{}{
		"image":       base64.StdEncoding.EncodeToString(image),
		"employee_id": employeeID,
	}, &enrollment)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (o *HTTPOracle) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	if o.baseURL == "" {
		return ErrUnavailable
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		// Tidak bisa connect sama sekali = unavailable, bukan error teknis
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusBadGateway {
		return fmt.Errorf("%w: face service returned %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("face service returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
