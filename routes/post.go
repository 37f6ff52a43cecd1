package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/controllers"
	"github.com/navbryce/next-blog-be/middleware"
	"github.com/navbryce/next-blog-be/util"
)

type postRoutes struct {
	posts    *controllers.PostController
	comments *controllers.CommentController
}

func AddPostRoutes(group *gin.RouterGroup, posts *controllers.PostController, comments *controllers.CommentController, authHandlers *AuthHandlers) {
	routes := postRoutes{posts: posts, comments: comments}
	post := group.Group("/post")

	public := post.Group("", authHandlers.Optional)
	public.GET("", util.HandlerWrapper(routes.getFeed, &util.HandlerOpts{}))
	public.GET("/:id", util.HandlerWrapper(routes.getPostById, &util.HandlerOpts{}))

	authed := post.Group("", authHandlers.Required)
	authed.POST("", util.HandlerWrapper(routes.createPost, &util.HandlerOpts{}))
	authed.POST("/:id/like", util.HandlerWrapper(routes.like, &util.HandlerOpts{}))
	authed.DELETE("/:id/like", util.HandlerWrapper(routes.unlike, &util.HandlerOpts{}))
	authed.POST("/:id/comment", util.HandlerWrapper(routes.createComment, &util.HandlerOpts{}))
}

func (pr *postRoutes) getFeed(c *gin.Context) (interface{}, *util.HTTPError) {
	query, httpErr := parseFeedQuery(c)
	if httpErr != nil {
		return nil, httpErr
	}
	return pr.posts.GetFeed(c, middleware.GetUserIdMaybe(c), query)
}

func (pr *postRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return pr.posts.CreatePost(c, middleware.MustGetUserId(c), &req)
}

func (pr *postRoutes) getPostById(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return pr.posts.GetPost(c, middleware.GetUserIdMaybe(c), id)
}

func (pr *postRoutes) like(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return nil, pr.posts.Like(c, middleware.MustGetUserId(c), id)
}

func (pr *postRoutes) unlike(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	return nil, pr.posts.Unlike(c, middleware.MustGetUserId(c), id)
}

func (pr *postRoutes) createComment(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	var req controllers.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return pr.comments.Create(c, middleware.MustGetUserId(c), id, &req)
}
