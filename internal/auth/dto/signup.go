package dto

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}
