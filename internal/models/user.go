package models

// TestUser is the account registered (or logged in) to obtain a bearer token.
// It only exists to authenticate the run; nothing here is persisted locally.
type TestUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Phone         string `json:"phone"`
	AccountNumber string `json:"account_number"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login returns the login body for this user.
func (u TestUser) Login() LoginRequest {
	return LoginRequest{Email: u.Email, Password: u.Password}
}

// TokenResponse is the body returned by register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// AuthToken is an opaque bearer credential held for the duration of a run.
type AuthToken string

// Preview returns the first 20 characters of the token for log output.
func (t AuthToken) Preview() string {
	s := string(t)
	if len(s) <= 20 {
		return s
	}
	return s[:20] + "..."
}

// Header returns the Authorization header value.
func (t AuthToken) Header() string {
	return "Bearer " + string(t)
}
