package service

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/casestudy-api/internal/models"
	appErrors "github.com/noah-isme/casestudy-api/pkg/errors"
)

const (
	tokenDateLayout   = "2006-01-02"
	sessionSubject    = "case-study-browser"
	defaultSessionAge = 7 * 24 * time.Hour
)

// AuthConfig holds the externally supplied secrets of the gate.
type AuthConfig struct {
	Password      string
	PasswordHash  string
	TokenSecret   string
	SigningSecret string
	SessionMaxAge time.Duration
}

// AuthService validates shared credentials and issues session markers. It keeps no session state.
type AuthService struct {
	config  AuthConfig
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(config AuthConfig, metrics *MetricsService, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.SessionMaxAge <= 0 {
		config.SessionMaxAge = defaultSessionAge
	}
	if config.PasswordHash == "" && config.Password == "" {
		logger.Warn("no password configured; password login disabled")
	}
	if config.TokenSecret == "" {
		logger.Warn("no token secret configured; token login disabled")
	}
	return &AuthService{config: config, metrics: metrics, logger: logger, now: time.Now}
}

// WithClock overrides the time source used for daily tokens and marker expiry.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// SessionMaxAge is the lifetime of the session cookie.
func (s *AuthService) SessionMaxAge() time.Duration {
	return s.config.SessionMaxAge
}

// LoginWithPassword checks the submitted password against the configured secret.
func (s *AuthService) LoginWithPassword(_ context.Context, req models.LoginRequest) error {
	ok := s.checkPassword(req.Password)
	s.record(models.AuthSchemePassword, ok, req.IP)
	if !ok {
		return appErrors.ErrInvalidPassword
	}
	return nil
}

// LoginWithToken checks the submitted token against today's token (UTC).
func (s *AuthService) LoginWithToken(_ context.Context, req models.TokenLoginRequest) error {
	ok := s.config.TokenSecret != "" && req.Token != "" &&
		constantTimeEqual(req.Token, DailyToken(s.config.TokenSecret, s.now()))
	s.record(models.AuthSchemeToken, ok, req.IP)
	if !ok {
		return appErrors.ErrInvalidToken
	}
	return nil
}

// DailyToken derives the token valid during the UTC calendar day containing at.
func DailyToken(secret string, at time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(secret + "-" + at.UTC().Format(tokenDateLayout)))
}

// IssueMarker returns the cookie value for a freshly authenticated client.
// Without a signing secret this is the plain sentinel.
func (s *AuthService) IssueMarker() (string, error) {
	if s.config.SigningSecret == "" {
		return models.SessionSentinel, nil
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.SessionMaxAge)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.SigningSecret))
	if err != nil {
		return "", appErrors.WrapAs(err, appErrors.ErrInternal)
	}
	return signed, nil
}

// ValidMarker reports whether a cookie value proves a prior successful login.
func (s *AuthService) ValidMarker(value string) bool {
	if value == "" {
		return false
	}
	if s.config.SigningSecret == "" {
		return value == models.SessionSentinel
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.config.SigningSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(sessionSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	return err == nil
}

func (s *AuthService) checkPassword(submitted string) bool {
	if submitted == "" {
		return false
	}
	if s.config.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.config.PasswordHash), []byte(submitted)) == nil
	}
	return s.config.Password != "" && constantTimeEqual(submitted, s.config.Password)
}

func (s *AuthService) record(scheme models.AuthScheme, ok bool, ip string) {
	s.metrics.RecordLogin(scheme, ok)
	if ok {
		s.logger.Info("login succeeded", zap.String("scheme", string(scheme)), zap.String("ip", ip))
		return
	}
	s.logger.Info("login rejected", zap.String("scheme", string(scheme)), zap.String("ip", ip))
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
