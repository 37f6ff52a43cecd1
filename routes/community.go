package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/controllers"
	"github.com/navbryce/next-blog-be/middleware"
	"github.com/navbryce/next-blog-be/util"
)

type communityRoutes struct {
	controller *controllers.CommunityController
	posts      *controllers.PostController
}

func AddCommunityRoutes(group *gin.RouterGroup, controller *controllers.CommunityController, posts *controllers.PostController, authHandlers *AuthHandlers) {
	routes := communityRoutes{controller: controller, posts: posts}
	communities := group.Group("/community")
	communities.GET("", util.HandlerWrapper(routes.list, &util.HandlerOpts{}))
	communities.GET("/:id", util.HandlerWrapper(routes.getCommunityById, &util.HandlerOpts{}))
	communities.GET("/:id/post", authHandlers.Optional, util.HandlerWrapper(routes.getPosts, &util.HandlerOpts{}))

	authed := communities.Group("", authHandlers.Required)
	authed.POST("", util.HandlerWrapper(routes.createCommunity, &util.HandlerOpts{}))
	authed.GET("/my", util.HandlerWrapper(routes.mine, &util.HandlerOpts{}))
	authed.POST("/:id/post", util.HandlerWrapper(routes.createPost, &util.HandlerOpts{}))
	authed.GET("/:id/role", util.HandlerWrapper(routes.getRole, &util.HandlerOpts{}))
	authed.POST("/:id/subscribe", util.HandlerWrapper(routes.subscribe, &util.HandlerOpts{}))
	authed.DELETE("/:id/unsubscribe", util.HandlerWrapper(routes.unsubscribe, &util.HandlerOpts{}))
}

func (cr *communityRoutes) list(c *gin.Context) (interface{}, *util.HTTPError) {
	return cr.controller.List(c)
}

func (cr *communityRoutes) createCommunity(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.CreateCommunityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return cr.controller.CreateCommunity(c, middleware.MustGetUserId(c), &req)
}

func (cr *communityRoutes) mine(c *gin.Context) (interface{}, *util.HTTPError) {
	return cr.controller.Mine(c, middleware.MustGetUserId(c))
}

func (cr *communityRoutes) getCommunityById(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return cr.controller.Info(c, id)
}

func (cr *communityRoutes) getPosts(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	query, httpErr := parseFeedQuery(c)
	if httpErr != nil {
		return nil, httpErr
	}
	return cr.controller.Posts(c, middleware.GetUserIdMaybe(c), id, query)
}

func (cr *communityRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	var req controllers.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return cr.posts.CreateCommunityPost(c, middleware.MustGetUserId(c), id, &req)
}

func (cr *communityRoutes) getRole(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	role, httpErr := cr.controller.Role(c, middleware.MustGetUserId(c), id)
	if httpErr != nil {
		return nil, httpErr
	}
	// a typed nil still encodes as a JSON null body
	return role, nil
}

func (cr *communityRoutes) subscribe(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return nil, cr.controller.Subscribe(c, middleware.MustGetUserId(c), id)
}

func (cr *communityRoutes) unsubscribe(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return nil, cr.controller.Unsubscribe(c, middleware.MustGetUserId(c), id)
}
