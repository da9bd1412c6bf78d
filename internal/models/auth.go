package models

// SessionCookieName is the cookie carrying the session marker.
const SessionCookieName = "authenticated"

// SessionSentinel is the unsigned marker value meaning "authenticated".
const SessionSentinel = "true"

// LoginRequest carries the static password.
type LoginRequest struct {
	Password string `json:"password"`
	IP       string `json:"-"`
}

// TokenLoginRequest carries a daily token.
type TokenLoginRequest struct {
	Token string `json:"token"`
	IP    string `json:"-"`
}

// AuthScheme names the credential scheme used for a login attempt.
type AuthScheme string

const (
	AuthSchemePassword AuthScheme = "password"
	AuthSchemeToken    AuthScheme = "token"
)
