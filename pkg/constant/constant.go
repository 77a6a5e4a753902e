package constant

const (
	MinPasswordLength = 8

	RefreshCookieName = "refresh_token"
	CSRFHeaderName    = "X-CSRF-Token"

	// OpaqueTokenBytes is the entropy of refresh and CSRF token values.
	OpaqueTokenBytes = 32

	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)
