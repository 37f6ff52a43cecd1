package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/metrics"
	"github.com/navbryce/next-blog-be/util"
)

func AddHealthCheckRoutes(group *gin.RouterGroup) {
	health := group.Group("/health")
	health.GET("", util.HandlerWrapper(AliveCheck, &util.HandlerOpts{}))
}

func AliveCheck(c *gin.Context) (interface{}, *util.HTTPError) {
	return nil, nil
}

func AddMetricsRoutes(group *gin.RouterGroup) {
	group.GET("/metrics", gin.WrapH(metrics.Handler()))
}
