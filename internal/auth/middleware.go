package auth

import (
	"net/http"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Cookie names
const (
	SessionCookieName = "auth-session"
	StateCookieName   = "github-oauth-state"
)

// Context keys set by SessionMiddleware
const (
	ContextKeyUser    = "user"
	ContextKeyUserID  = "user_id"
	ContextKeyEmail   = "email"
	ContextKeySession = "session"
)

// AuthMiddleware resolves the session cookie of each request
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// SessionMiddleware validates the session cookie if present and sets the user
// context. Invalid or expired tokens leave the request anonymous and clear the cookie.
func (m *AuthMiddleware) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		identity, err := m.service.ValidateSession(c.Request.Context(), token)
		if err != nil {
			if apperrors.IsAuthentication(err) {
				clearCookie(c, SessionCookieName, m.service.Config().SecureCookies())
			} else {
				logger.WithContext(c).WithError(err).Error("Failed to validate session")
			}
			c.Next()
			return
		}

		c.Set(ContextKeyUser, identity.User)
		c.Set(ContextKeyUserID, identity.User.ID)
		c.Set(ContextKeyEmail, identity.User.Email)
		c.Set(ContextKeySession, identity.Session)

		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextKeyEmail)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetIdentity returns the authenticated principal of the request
func GetIdentity(c *gin.Context) (*Identity, bool) {
	user, ok := c.Get(ContextKeyUser)
	if !ok {
		return nil, false
	}
	session, ok := c.Get(ContextKeySession)
	if !ok {
		return nil, false
	}

	identity := &Identity{}
	identity.User, _ = user.(*models.User)
	identity.Session, _ = session.(*models.Session)
	return identity, identity.User != nil && identity.Session != nil
}

func setCookie(c *gin.Context, name, value string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}

func clearCookie(c *gin.Context, name string, secure bool) {
	setCookie(c, name, "", -1, secure)
}
