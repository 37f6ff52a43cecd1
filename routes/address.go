package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/controllers"
	"github.com/navbryce/next-blog-be/util"
)

type addressRoutes struct {
	controller *controllers.AddressController
}

func AddAddressRoutes(group *gin.RouterGroup, controller *controllers.AddressController) {
	routes := addressRoutes{controller: controller}
	address := group.Group("/address")
	address.GET("/search", util.HandlerWrapper(routes.search, &util.HandlerOpts{}))
	address.GET("/chain", util.HandlerWrapper(routes.chain, &util.HandlerOpts{}))
}

func (ar *addressRoutes) search(c *gin.Context) (interface{}, *util.HTTPError) {
	var parentObjectId int64
	if raw := c.Query("parentObjectId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, util.ErrValidationFailed.Withf("parentObjectId must be an integer")
		}
		parentObjectId = parsed
	}
	return ar.controller.Search(c, parentObjectId, c.Query("query"))
}

func (ar *addressRoutes) chain(c *gin.Context) (interface{}, *util.HTTPError) {
	return ar.controller.Chain(c, c.Query("objectGuid"))
}
