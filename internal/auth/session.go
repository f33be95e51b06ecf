package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"linkedlist-backend/internal/cache"
	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/logger"
	"linkedlist-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated principal of a request
type Identity struct {
	Session *models.Session
	User    *models.User
}

// SessionManager mints, validates and revokes session tokens
type SessionManager interface {
	Create(ctx context.Context, user *models.User) (string, *models.Session, error)
	Validate(ctx context.Context, token string) (*Identity, error)
	Invalidate(ctx context.Context, session *models.Session) error
}

// generateRandomString returns n random bytes encoded as unpadded base64url
func generateRandomString(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// GenerateSessionToken returns a fresh opaque session token
func GenerateSessionToken() (string, error) {
	return generateRandomString(18)
}

// SessionID derives the stored session id from a token: lowercase hex sha256
func SessionID(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// StoreSessionManager keeps sessions in the bound persistence backend
type StoreSessionManager struct {
	sessions repository.SessionRepositoryInterface
	users    repository.UserRepositoryInterface
	ttl      time.Duration
	now      func() time.Time
}

// NewStoreSessionManager creates a session manager over the backend store
func NewStoreSessionManager(sessions repository.SessionRepositoryInterface, users repository.UserRepositoryInterface, ttl time.Duration) *StoreSessionManager {
	return &StoreSessionManager{sessions: sessions, users: users, ttl: ttl, now: models.Now}
}

func (m *StoreSessionManager) Create(ctx context.Context, user *models.User) (string, *models.Session, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return "", nil, err
	}
	session := &models.Session{
		ID:        SessionID(token),
		UserID:    user.ID,
		ExpiresAt: m.now().Add(m.ttl),
	}
	if err := m.sessions.CreateSession(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}
	return token, session, nil
}

func (m *StoreSessionManager) Validate(ctx context.Context, token string) (*Identity, error) {
	session, err := m.sessions.GetSession(ctx, SessionID(token))
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, apperrors.ErrInvalidSession
	}
	if session.Expired(m.now()) {
		if err := m.sessions.DeleteSession(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("failed to delete expired session: %w", err)
		}
		return nil, apperrors.ErrSessionExpired
	}
	user, err := m.users.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidSession
	}
	return &Identity{Session: session, User: user}, nil
}

func (m *StoreSessionManager) Invalidate(ctx context.Context, session *models.Session) error {
	return m.sessions.DeleteSession(ctx, session.ID)
}

// RedisSessionManager keeps sessions in Redis, expiring with the session
type RedisSessionManager struct {
	cache cache.Cache
	users repository.UserRepositoryInterface
	ttl   time.Duration
	now   func() time.Time
}

// NewRedisSessionManager creates a session manager over a Redis cache
func NewRedisSessionManager(c cache.Cache, users repository.UserRepositoryInterface, ttl time.Duration) *RedisSessionManager {
	return &RedisSessionManager{cache: c, users: users, ttl: ttl, now: models.Now}
}

func (m *RedisSessionManager) Create(ctx context.Context, user *models.User) (string, *models.Session, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return "", nil, err
	}
	session := &models.Session{
		ID:        SessionID(token),
		UserID:    user.ID,
		ExpiresAt: m.now().Add(m.ttl),
	}
	if err := m.cache.SetJSON(ctx, sessionKey(session.ID), session, m.ttl); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}
	return token, session, nil
}

func (m *RedisSessionManager) Validate(ctx context.Context, token string) (*Identity, error) {
	var session models.Session
	if err := m.cache.GetJSON(ctx, sessionKey(SessionID(token)), &session); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.Expired(m.now()) {
		_ = m.cache.Delete(ctx, sessionKey(session.ID))
		return nil, apperrors.ErrSessionExpired
	}
	user, err := m.users.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidSession
	}
	return &Identity{Session: &session, User: user}, nil
}

func (m *RedisSessionManager) Invalidate(ctx context.Context, session *models.Session) error {
	return m.cache.Delete(ctx, sessionKey(session.ID))
}

func sessionKey(id string) string {
	return "session:" + id
}

// SessionClaims are the claims of a stateless session token
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// StatelessSessionManager encodes the session in a signed JWT. Nothing is
// stored server-side, so invalidation only clears the cookie.
type StatelessSessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewStatelessSessionManager creates a session manager signing tokens with secret
func NewStatelessSessionManager(secret string, ttl time.Duration) *StatelessSessionManager {
	return &StatelessSessionManager{secret: []byte(secret), ttl: ttl, now: models.Now}
}

func (m *StatelessSessionManager) Create(ctx context.Context, user *models.User) (string, *models.Session, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl).Truncate(time.Second)
	claims := &SessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "linkedlist-backend",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, &models.Session{ID: SessionID(token), UserID: user.ID, ExpiresAt: expiresAt}, nil
}

func (m *StatelessSessionManager) Validate(ctx context.Context, token string) (*Identity, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrInvalidSession
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, apperrors.ErrInvalidSession
	}

	return &Identity{
		Session: &models.Session{ID: SessionID(token), UserID: claims.Subject, ExpiresAt: claims.ExpiresAt.UTC()},
		User:    &models.User{ID: claims.Subject, Email: claims.Email},
	}, nil
}

func (m *StatelessSessionManager) Invalidate(ctx context.Context, session *models.Session) error {
	return nil
}

// NewSessionManager builds the session manager selected by config.SessionMode.
// The redis cache is only needed, and only used, in redis mode.
func NewSessionManager(config *AuthConfig, store repository.Store, redisCache cache.Cache) (SessionManager, error) {
	switch config.SessionMode {
	case SessionModeStore, "":
		return NewStoreSessionManager(store, store, config.SessionTTL), nil
	case SessionModeRedis:
		if redisCache == nil {
			return nil, apperrors.ErrRedisURLNotSet
		}
		return NewRedisSessionManager(redisCache, store, config.SessionTTL), nil
	case SessionModeStateless:
		if config.SessionSecret == "" {
			return nil, apperrors.ErrSessionSecretNotSet
		}
		return NewStatelessSessionManager(config.SessionSecret, config.SessionTTL), nil
	default:
		return nil, apperrors.ErrUnsupportedSessionMode
	}
}

// PurgeExpiredSessions deletes expired stored sessions every interval until ctx is done
func PurgeExpiredSessions(ctx context.Context, sessions repository.SessionRepositoryInterface, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.DeleteExpiredSessions(ctx, models.Now())
			log := logger.WithContext(ctx)
			if err != nil {
				log.WithError(err).Warn("Failed to purge expired sessions")
				continue
			}
			if n > 0 {
				log.WithField("count", n).Info("Purged expired sessions")
			}
		}
	}
}
