package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/controllers"
	"github.com/navbryce/next-blog-be/util"
)

type tagRoutes struct {
	controller *controllers.TagController
}

func AddTagRoutes(group *gin.RouterGroup, controller *controllers.TagController, authHandlers *AuthHandlers) {
	routes := tagRoutes{controller: controller}
	tags := group.Group("/tag")
	tags.GET("", util.HandlerWrapper(routes.list, &util.HandlerOpts{}))
	tags.POST("", authHandlers.Required, util.HandlerWrapper(routes.createTag, &util.HandlerOpts{}))
}

func (tr *tagRoutes) list(c *gin.Context) (interface{}, *util.HTTPError) {
	return tr.controller.List(c)
}

func (tr *tagRoutes) createTag(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.CreateTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return tr.controller.Create(c, &req)
}
