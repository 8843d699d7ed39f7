package middleware

import (
	"strings"

	"github.com/ComradeCold/pdf-finder-project/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// PublicKey is the shared bucket used when a caller never set a key.
const PublicKey = "public"

const userKeyField = "user_key"

// Sessions returns the signed-cookie session middleware.
func Sessions(cfg *config.SessionConfig) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
	})
	return sessions.Sessions(cfg.CookieName, store)
}

// Identity resolves the session's user key and sets it in the request
// context. Must run after Sessions.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userKeyField, ResolveUserKey(sessions.Default(c)))
		c.Next()
	}
}

// ResolveUserKey returns the session's stored key, or PublicKey when it
// is unset or blank after trimming.
func ResolveUserKey(sess sessions.Session) string {
	key, _ := sess.Get(userKeyField).(string)
	key = strings.TrimSpace(key)
	if key == "" {
		return PublicKey
	}
	return key
}

// SetUserKey stores the trimmed candidate in the session and returns
// the effective key. An empty candidate resets the session to
// PublicKey. Any two callers presenting the same key share a bucket;
// the cookie signature protects the session, not the key.
func SetUserKey(sess sessions.Session, candidate string) (string, error) {
	key := strings.TrimSpace(candidate)
	if key == "" {
		key = PublicKey
	}
	sess.Set(userKeyField, key)
	if err := sess.Save(); err != nil {
		return "", err
	}
	return key, nil
}

// GetUserKey reads the resolved key from the request context.
func GetUserKey(c *gin.Context) string {
	if v, ok := c.Get(userKeyField); ok {
		if key, ok := v.(string); ok && key != "" {
			return key
		}
	}
	return PublicKey
}
