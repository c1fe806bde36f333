package cookie

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

func SetAccessToken(c *gin.Context, token string, expiry time.Duration, domain string, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		AccessTokenCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		domain,
		secure,
		true, // HttpOnly
	)
}

func ClearAccessToken(c *gin.Context, domain string, secure bool) {
	c.SetCookie(AccessTokenCookieName, "", -1, "/", domain, secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}
