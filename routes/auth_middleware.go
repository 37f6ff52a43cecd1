package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/middleware"
	"github.com/navbryce/next-blog-be/services"
)

// AuthHandlers pairs the two flavours of the auth middleware used by the route groups
type AuthHandlers struct {
	Required gin.HandlerFunc
	Optional gin.HandlerFunc
}

func NewAuthHandlers(tokens *services.TokenService) *AuthHandlers {
	return &AuthHandlers{
		Required: middleware.Auth(tokens, &middleware.AuthConfig{}),
		Optional: middleware.Auth(tokens, &middleware.AuthConfig{SessionNotRequired: true}),
	}
}
