package qrtoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims hasil decode QR token kantor.
type Claims struct {
	OfficeID  uint
	Issuer    string
	ExpiresAt time.Time
}

// Signer issues and verifies the short-lived office QR tokens. The token is a
// self-contained signed claim (no server-side token table), so a token cannot
// be revoked before its expiry — accepted tradeoff for not needing storage.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret string, issuer string, ttl time.Duration) *Signer {
	return &Signer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue membuat token QR baru untuk satu kantor.
func (s *Signer) Issue(officeID uint) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"office_id": officeID,
		"iss":       s.issuer,
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the decoded claims, or nil for any invalid token: bad
// signature, malformed input, missing office id, or an expired token. Expiry
// is checked explicitly against the exp claim rather than relying only on the
// jwt library's validation. Never panics on garbage input.
func (s *Signer) Verify(tokenString string) *Claims {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	officeID, ok := mapClaims["office_id"].(float64)
	if !ok || officeID <= 0 {
		return nil
	}

	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return nil
	}
	expiresAt := time.Unix(int64(exp), 0)

	// Cek expiry sendiri, jangan cuma percaya validasi library
	if !s.now().Before(expiresAt) {
		return nil
	}

	issuer, _ := mapClaims["iss"].(string)

	return &Claims{
		OfficeID:  uint(officeID),
		Issuer:    issuer,
		ExpiresAt: expiresAt,
	}
}
