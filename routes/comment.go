package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/controllers"
	"github.com/navbryce/next-blog-be/middleware"
	"github.com/navbryce/next-blog-be/util"
)

type commentRoutes struct {
	controller *controllers.CommentController
}

func AddCommentRoutes(group *gin.RouterGroup, controller *controllers.CommentController, authHandlers *AuthHandlers) {
	routes := commentRoutes{controller: controller}
	comment := group.Group("/comment")
	comment.GET("/:id/tree", authHandlers.Optional, util.HandlerWrapper(routes.getTree, &util.HandlerOpts{}))

	authed := comment.Group("", authHandlers.Required)
	authed.POST("/:id/comment", util.HandlerWrapper(routes.reply, &util.HandlerOpts{}))
	authed.PUT("/:id", util.HandlerWrapper(routes.edit, &util.HandlerOpts{}))
	authed.DELETE("/:id", util.HandlerWrapper(routes.delete, &util.HandlerOpts{}))
}

func (cr *commentRoutes) getTree(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return cr.controller.GetTree(c, middleware.GetUserIdMaybe(c), id)
}

func (cr *commentRoutes) reply(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	var req controllers.EditCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return cr.controller.CreateReply(c, middleware.MustGetUserId(c), id, req.Content)
}

func (cr *commentRoutes) edit(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	var req controllers.EditCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return nil, cr.controller.Edit(c, middleware.MustGetUserId(c), id, &req)
}

func (cr *commentRoutes) delete(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return nil, cr.controller.Delete(c, middleware.MustGetUserId(c), id)
}
