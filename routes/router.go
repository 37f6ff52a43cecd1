package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/controllers"
	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/middleware"
	"github.com/navbryce/next-blog-be/services"
)

type Deps struct {
	Database db.Database
	Tokens   *services.TokenService
	// Images may be nil, leaving only http(s) links as post images
	Images services.ImageStore
	// Limiter may be nil, disabling throttling of the credential endpoints
	Limiter *middleware.RateLimiter
}

// Register mounts every route group onto r. Global middleware is the caller's business.
func Register(r *gin.Engine, deps *Deps) {
	authHandlers := NewAuthHandlers(deps.Tokens)

	postController := controllers.NewPostController(deps.Database, deps.Images)
	commentController := controllers.NewCommentController(deps.Database)

	api := r.Group("/api")
	AddAccountRoutes(api,
		controllers.NewAuthController(deps.Database, deps.Tokens),
		controllers.NewUserController(deps.Database),
		authHandlers, deps.Limiter)
	AddPostRoutes(api, postController, commentController, authHandlers)
	AddCommentRoutes(api, commentController, authHandlers)
	AddCommunityRoutes(api, controllers.NewCommunityController(deps.Database), postController, authHandlers)
	AddTagRoutes(api, controllers.NewTagController(deps.Database), authHandlers)
	AddAuthorRoutes(api, controllers.NewAuthorController(deps.Database))
	AddAddressRoutes(api, controllers.NewAddressController(deps.Database))

	AddHealthCheckRoutes(&r.RouterGroup)
	AddMetricsRoutes(&r.RouterGroup)
}
