package token

import (
	"encoding/json"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Inspector decodes a compact token's payload without verifying its
// signature. The decoded claims are a UI convenience for expiry hinting only;
// the backend is the sole authority on token validity, so no verification is
// attempted (or wanted) here.
type Inspector struct {
	nowTime func() time.Time
}

type InspectorOption func(*Inspector)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) InspectorOption {
	return func(i *Inspector) {
		i.nowTime = nowFunc
	}
}

func NewInspector(options ...InspectorOption) *Inspector {
	inspector := &Inspector{nowTime: time.Now}
	for _, opt := range options {
		opt(inspector)
	}
	return inspector
}

// Decode extracts the claims from the payload segment of a compact token.
// It returns nil, never an error, when the token has fewer than two
// segments or the payload is not valid base64url-encoded JSON: a malformed
// token degrades to "no claims" rather than crashing the caller.
func (i *Inspector) Decode(rawToken string) jwtlib.MapClaims {
	parts := strings.Split(rawToken, ".")
	if len(parts) < 2 {
		return nil
	}
	payload, err := jwtlib.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return nil
	}
	var claims jwtlib.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil
	}
	return claims
}

// IsExpired reports whether the claims carry an exp strictly in the past.
// Nil claims and claims without exp report false: a token the client cannot
// prove expired stays usable until the backend rejects it.
func (i *Inspector) IsExpired(claims jwtlib.MapClaims) bool {
	if claims == nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(i.nowTime())
}
