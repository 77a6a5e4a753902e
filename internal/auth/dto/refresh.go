package dto

// RefreshInput carries the refresh cookie value and the CSRF header. Neither
// field is ever read from the JSON body.
type RefreshInput struct {
	RefreshToken string `json:"-"`
	CsrfToken    string `json:"-"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type LogoutInput struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
	CsrfToken    string `json:"-"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}
