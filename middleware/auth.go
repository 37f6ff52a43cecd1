package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/services"
	"github.com/navbryce/next-blog-be/util"
)

const (
	USER_KEY = "userId"

	bearerPrefix = "Bearer "
)

type AuthConfig struct {
	// SessionNotRequired lets requests without an Authorization header through anonymously.
	// A header that is present must still be valid.
	SessionNotRequired bool
}

// Auth resolves the bearer access token to a user id. The user must also hold a live refresh token,
// so logging out invalidates outstanding access tokens.
func Auth(tokens *services.TokenService, config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.SessionNotRequired && c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		userId, httpErr := authenticate(c, tokens)
		if httpErr != nil {
			util.HandleHTTPErrorRes(c, httpErr)
			return
		}
		c.Set(USER_KEY, userId)
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens *services.TokenService) (string, *util.HTTPError) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", util.ErrUnauthorized.Withf("no authorization header")
	}
	if !strings.HasPrefix(header, bearerPrefix) || len(header) <= len(bearerPrefix) {
		return "", util.ErrUnauthorized.Withf("incorrectly formatted authorization header")
	}
	userId, httpErr := tokens.ParseAccessToken(strings.TrimSpace(header[len(bearerPrefix):]))
	if httpErr != nil {
		return "", httpErr
	}
	active, httpErr := tokens.HasActiveSession(c, userId)
	if httpErr != nil {
		return "", httpErr
	}
	if !active {
		return "", util.ErrSessionInactive
	}
	return userId, nil
}

// GetUserIdMaybe is empty for anonymous requests
func GetUserIdMaybe(c *gin.Context) string {
	return c.GetString(USER_KEY)
}

// MustGetUserId panics outside of a route guarded by a required Auth
func MustGetUserId(c *gin.Context) string {
	return c.MustGet(USER_KEY).(string)
}
