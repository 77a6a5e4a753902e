package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/pgangayi/farmstead-auth/pkg/constant"
)

// CSRFIssuer mints the per-session double-submit token. The value is returned
// in the JSON body only, never as a cookie: the client must echo it back in the
// X-CSRF-Token header, which a cross-site request cannot do.
type CSRFIssuer struct{}

func NewCSRFIssuer() CSRFIssuer {
	return CSRFIssuer{}
}

func (CSRFIssuer) Issue() (string, error) {
	return newOpaqueToken()
}

// Validate compares the presented header value against the token bound to the
// session. Comparison is constant-time and an empty presented value never
// matches.
func (CSRFIssuer) Validate(presented, issued string) bool {
	if presented == "" || issued == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(issued)) == 1
}

// newOpaqueToken returns a URL-safe random value used for both refresh token
// values and CSRF tokens.
func newOpaqueToken() (string, error) {
	b := make([]byte, constant.OpaqueTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
