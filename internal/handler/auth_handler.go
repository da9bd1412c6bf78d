package handler

import (
	"context"
	_ "embed"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/casestudy-api/internal/models"
	appErrors "github.com/noah-isme/casestudy-api/pkg/errors"
	"github.com/noah-isme/casestudy-api/pkg/response"
)

//go:embed login.html
var loginPage []byte

type authService interface {
	LoginWithPassword(ctx context.Context, req models.LoginRequest) error
	LoginWithToken(ctx context.Context, req models.TokenLoginRequest) error
	IssueMarker() (string, error)
	SessionMaxAge() time.Duration
}

// AuthHandler wires the login gate endpoints to the auth service.
type AuthHandler struct {
	service      authService
	cookieSecure bool
}

// NewAuthHandler creates a new handler. cookieSecure forces the Secure cookie attribute
// even for plain HTTP requests.
func NewAuthHandler(svc authService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{service: svc, cookieSecure: cookieSecure}
}

// Login godoc
// @Summary Sign in with the shared password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Success
// @Failure 401 {object} errors.Error
// @Failure 500 {object} errors.Error
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.WrapAs(err, appErrors.ErrLoginFailed))
		return
	}
	req.IP = c.ClientIP()

	if err := h.service.LoginWithPassword(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	h.startSession(c, appErrors.ErrLoginFailed)
}

// Token godoc
// @Summary Sign in with today's access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.TokenLoginRequest true "Token payload"
// @Success 200 {object} response.Success
// @Failure 401 {object} errors.Error
// @Failure 500 {object} errors.Error
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req models.TokenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.WrapAs(err, appErrors.ErrAuthenticationFailed))
		return
	}
	req.IP = c.ClientIP()

	if err := h.service.LoginWithToken(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	h.startSession(c, appErrors.ErrAuthenticationFailed)
}

// Logout godoc
// @Summary Sign out
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Success
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(models.SessionCookieName, "", -1, "/", "", h.secure(c), true)
	response.OK(c)
}

// LoginPage serves the sign-in form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", loginPage)
}

func (h *AuthHandler) startSession(c *gin.Context, failure *appErrors.Error) {
	marker, err := h.service.IssueMarker()
	if err != nil {
		response.Error(c, appErrors.WrapAs(err, failure))
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(models.SessionCookieName, marker, int(h.service.SessionMaxAge().Seconds()), "/", "", h.secure(c), true)
	response.OK(c)
}

func (h *AuthHandler) secure(c *gin.Context) bool {
	if h.cookieSecure || c.Request.TLS != nil {
		return true
	}
	return strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https")
}
