package auth

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// stateCookieMaxAge bounds how long a login attempt may take
const stateCookieMaxAge = 10 * 60

// MeUser is the public view of the signed-in user
type MeUser struct {
	ID    string `json:"id" example:"github-12345"`
	Email string `json:"email" example:"jane@example.com"`
}

// MeResponse represents the response of the identity endpoint
type MeResponse struct {
	Authenticated bool    `json:"authenticated" example:"true"`
	User          *MeUser `json:"user"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles GET /auth/github
// @Summary Start GitHub login
// @Description Sets the OAuth state cookie and redirects to the GitHub authorization page
// @Tags authentication
// @Success 302 {string} string "Redirect to GitHub"
// @Failure 503 {object} map[string]string "GitHub authentication is not configured"
// @Router /auth/github [get]
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := h.service.GenerateState()
	if err != nil {
		logger.WithContext(c).WithError(err).Error("Failed to generate OAuth state")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(state)
	if err != nil {
		if apperrors.IsConfiguration(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "GitHub authentication is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL"})
		return
	}

	setCookie(c, StateCookieName, state, stateCookieMaxAge, h.service.Config().SecureCookies())
	c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /auth/callback/github
// @Summary Complete GitHub login
// @Description Verifies the OAuth state, signs the user in and redirects to the application
// @Tags authentication
// @Param code query string true "OAuth authorization code"
// @Param state query string true "OAuth state parameter"
// @Success 302 {string} string "Redirect to the application, or to the login page with an error"
// @Failure 400 {object} map[string]string "Missing required parameters"
// @Router /auth/callback/github [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	storedState, _ := c.Cookie(StateCookieName)
	config := h.service.Config()
	clearCookie(c, StateCookieName, config.SecureCookies())

	result, err := h.service.HandleCallback(c.Request.Context(), code, state, storedState)
	if err != nil {
		logger.WithContext(c).WithError(err).Warn("GitHub authentication failed")
		c.Redirect(http.StatusFound, config.LoginPath+"?error="+url.QueryEscape("Authentication failed: "+callbackErrorMessage(err)))
		return
	}

	maxAge := int(time.Until(result.Session.ExpiresAt).Seconds())
	setCookie(c, SessionCookieName, result.Token, maxAge, config.SecureCookies())

	logger.WithContext(c).WithField("user", result.User.ID).Info("User signed in")
	c.Redirect(http.StatusFound, config.PostLoginRedirect)
}

// Logout handles GET /auth/logout
// @Summary Sign out
// @Description Invalidates the current session, clears the session cookie and redirects to the login page
// @Tags authentication
// @Success 302 {string} string "Redirect to the login page"
// @Router /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	if identity, ok := GetIdentity(c); ok {
		if err := h.service.Logout(c.Request.Context(), identity); err != nil {
			logger.WithContext(c).WithError(err).Warn("Failed to invalidate session")
		}
	}

	config := h.service.Config()
	clearCookie(c, SessionCookieName, config.SecureCookies())
	c.Redirect(http.StatusFound, config.LoginPath)
}

// Me handles GET /api/auth/me
// @Summary Current identity
// @Description Returns whether the request is authenticated and, if so, the signed-in user
// @Tags authentication
// @Produce json
// @Success 200 {object} MeResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusOK, MeResponse{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, MeResponse{
		Authenticated: true,
		User:          &MeUser{ID: identity.User.ID, Email: identity.User.Email},
	})
}

const callbackFailureReason = "could not sign in"

// callbackErrorMessage keeps provider and backend details out of the redirect URL.
// Only messages of our own auth and config errors are shown to the user.
func callbackErrorMessage(err error) string {
	var authErr *apperrors.AuthenticationError
	var configErr *apperrors.ConfigurationError
	switch {
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.As(err, &configErr):
		return configErr.Message
	default:
		return callbackFailureReason
	}
}
