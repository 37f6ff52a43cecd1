package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/controllers"
	"github.com/navbryce/next-blog-be/util"
)

func AddAuthorRoutes(group *gin.RouterGroup, controller *controllers.AuthorController) {
	authors := group.Group("/author")
	authors.GET("/list", util.HandlerWrapper(func(c *gin.Context) (interface{}, *util.HTTPError) {
		return controller.List(c)
	}, &util.HandlerOpts{}))
}
