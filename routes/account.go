package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/controllers"
	"github.com/navbryce/next-blog-be/middleware"
	"github.com/navbryce/next-blog-be/util"
)

type accountRoutes struct {
	auth *controllers.AuthController
	user *controllers.UserController
}

// AddAccountRoutes mounts the account endpoints. limiter guards the credential endpoints and may be nil.
func AddAccountRoutes(group *gin.RouterGroup, auth *controllers.AuthController, user *controllers.UserController, authHandlers *AuthHandlers, limiter *middleware.RateLimiter) {
	routes := accountRoutes{auth: auth, user: user}
	account := group.Group("/account")

	credentials := account.Group("")
	if limiter != nil {
		credentials.Use(limiter.Handler())
	}
	credentials.POST("/register", util.HandlerWrapper(routes.register, &util.HandlerOpts{}))
	credentials.POST("/login", util.HandlerWrapper(routes.login, &util.HandlerOpts{}))
	credentials.POST("/refresh", util.HandlerWrapper(routes.refresh, &util.HandlerOpts{}))

	authed := account.Group("", authHandlers.Required)
	authed.POST("/logout", util.HandlerWrapper(routes.logout, &util.HandlerOpts{}))
	authed.GET("/profile", util.HandlerWrapper(routes.getProfile, &util.HandlerOpts{}))
	authed.PUT("/profile", util.HandlerWrapper(routes.updateProfile, &util.HandlerOpts{}))
}

func (ar *accountRoutes) register(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return ar.auth.Register(c, &req)
}

func (ar *accountRoutes) login(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return ar.auth.Login(c, &req)
}

func (ar *accountRoutes) refresh(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return ar.auth.Refresh(c, &req)
}

func (ar *accountRoutes) logout(c *gin.Context) (interface{}, *util.HTTPError) {
	return ar.auth.Logout(c, middleware.MustGetUserId(c))
}

func (ar *accountRoutes) getProfile(c *gin.Context) (interface{}, *util.HTTPError) {
	return ar.user.GetProfile(c, middleware.MustGetUserId(c))
}

func (ar *accountRoutes) updateProfile(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return ar.user.UpdateProfile(c, middleware.MustGetUserId(c), &req)
}
