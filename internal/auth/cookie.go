package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(SessionTTL.Seconds()), "/", "", false, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
