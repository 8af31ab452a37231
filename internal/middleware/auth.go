package middleware

import (
	"net/http"
	"time"

	"renobudget/internal/auth"
	"renobudget/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userKey = "currentUser"

// RequireAuth verifies the session cookie twice: the token signature and
// expiry, then the mirrored session row. A token whose row is gone (logout,
// revocation) is rejected even though it still verifies, and the stale
// cookie is cleared.
func RequireAuth(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(auth.SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		sessionID, userID, err := auth.ParseToken(secret, raw)
		if err != nil {
			auth.ClearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		var sess models.Session
		if err := db.First(&sess, "id = ?", sessionID).Error; err != nil {
			auth.ClearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if sess.UserID != userID || sess.ExpiresAt.Before(time.Now()) {
			_ = db.Delete(&models.Session{}, "id = ?", sess.ID).Error
			auth.ClearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		var user models.User
		if err := db.First(&user, sess.UserID).Error; err != nil {
			auth.ClearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user loaded by RequireAuth.
func CurrentUser(c *gin.Context) models.User {
	user, _ := c.Get(userKey)
	u, _ := user.(models.User)
	return u
}
