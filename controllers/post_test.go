package controllers

import (
	"testing"

	"github.com/navbryce/next-blog-be/app"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedQuery(page int, size int) *app.FeedQuery {
	return &app.FeedQuery{Page: page, Size: size}
}

func TestFeedPagination(t *testing.T) {
	env := newTestEnv(t)
	authorId := env.register(t, "Ada", "ada@example.com")
	for i := 0; i < 7; i++ {
		env.createPost(t, authorId, &CreatePostReq{ReadingTime: i})
	}

	first, httpErr := env.posts.GetFeed(env.ctx, "", feedQuery(1, 5))
	require.Nil(t, httpErr)
	assert.Len(t, first.Posts, 5)
	assert.Equal(t, model.PageInfo{Size: 5, Count: 7, Current: 1}, first.Pagination)

	second, httpErr := env.posts.GetFeed(env.ctx, "", feedQuery(2, 5))
	require.Nil(t, httpErr)
	assert.Len(t, second.Posts, 2)

	_, httpErr = env.posts.GetFeed(env.ctx, "", feedQuery(3, 5))
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrInvalidPagination)

	_, httpErr = env.posts.GetFeed(env.ctx, "", feedQuery(0, 5))
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrInvalidPagination)
}

func TestFeedFirstPageOfNothing(t *testing.T) {
	env := newTestEnv(t)

	page, httpErr := env.posts.GetFeed(env.ctx, "", feedQuery(1, 5))
	require.Nil(t, httpErr)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 0, page.Pagination.Count)
}

func TestFeedTagFilterMatchesAnyTag(t *testing.T) {
	env := newTestEnv(t)
	authorId := env.register(t, "Ada", "ada@example.com")
	goTag := env.createTag(t, "go")
	rustTag := env.createTag(t, "rust")
	zigTag := env.createTag(t, "zig")

	env.createPost(t, authorId, &CreatePostReq{Tags: []string{goTag}})
	env.createPost(t, authorId, &CreatePostReq{Tags: []string{rustTag, zigTag}})
	env.createPost(t, authorId, &CreatePostReq{Tags: []string{zigTag}})
	env.createPost(t, authorId, &CreatePostReq{})

	filter := []string{goTag, rustTag}
	page, httpErr := env.posts.GetFeed(env.ctx, "", &app.FeedQuery{TagIds: filter, Page: 1, Size: 10})
	require.Nil(t, httpErr)
	require.Len(t, page.Posts, 2)
	for _, post := range page.Posts {
		shared := false
		for _, tagId := range post.TagIds() {
			if tagId == goTag || tagId == rustTag {
				shared = true
			}
		}
		assert.True(t, shared, "post %v has none of the requested tags", post.Id)
	}
}

func TestFeedFilters(t *testing.T) {
	env := newTestEnv(t)
	adaId := env.register(t, "Ada Lovelace", "ada@example.com")
	graceId := env.register(t, "Grace Hopper", "grace@example.com")
	env.createPost(t, adaId, &CreatePostReq{ReadingTime: 5})
	env.createPost(t, adaId, &CreatePostReq{ReadingTime: 15})
	env.createPost(t, graceId, &CreatePostReq{ReadingTime: 10})

	page, httpErr := env.posts.GetFeed(env.ctx, "", &app.FeedQuery{Author: "lovelace", Page: 1, Size: 5})
	require.Nil(t, httpErr)
	assert.Equal(t, 2, page.Pagination.Count)

	page, httpErr = env.posts.GetFeed(env.ctx, "", &app.FeedQuery{MinReadingTime: intPtr(6), MaxReadingTime: intPtr(14), Page: 1, Size: 5})
	require.Nil(t, httpErr)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, graceId, page.Posts[0].AuthorId)

	page, httpErr = env.posts.GetFeed(env.ctx, "", &app.FeedQuery{MinReadingTime: intPtr(10), Page: 1, Size: 5})
	require.Nil(t, httpErr)
	assert.Equal(t, 2, page.Pagination.Count)

	page, httpErr = env.posts.GetFeed(env.ctx, "", &app.FeedQuery{Author: "nobody", Page: 1, Size: 5})
	require.Nil(t, httpErr)
	assert.Empty(t, page.Posts)
}

func TestFeedSortingByLikes(t *testing.T) {
	env := newTestEnv(t)
	adaId := env.register(t, "Ada", "ada@example.com")
	graceId := env.register(t, "Grace", "grace@example.com")
	quiet := env.createPost(t, adaId, &CreatePostReq{})
	popular := env.createPost(t, adaId, &CreatePostReq{})
	require.Nil(t, env.posts.Like(env.ctx, adaId, popular))
	require.Nil(t, env.posts.Like(env.ctx, graceId, popular))

	page, httpErr := env.posts.GetFeed(env.ctx, graceId, &app.FeedQuery{Sorting: model.SortLikeDesc, Page: 1, Size: 5})
	require.Nil(t, httpErr)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, popular, page.Posts[0].Id)
	assert.Equal(t, 2, page.Posts[0].Likes)
	assert.True(t, page.Posts[0].HasLike)
	assert.Equal(t, quiet, page.Posts[1].Id)
	assert.False(t, page.Posts[1].HasLike)
}

func TestFeedCommunityScopes(t *testing.T) {
	env := newTestEnv(t)
	adminId := env.register(t, "Ada", "ada@example.com")
	readerId := env.register(t, "Grace", "grace@example.com")
	communityId := env.createCommunity(t, adminId, "Gophers", false)
	otherId := env.createCommunity(t, adminId, "Crabs", false)

	env.createPost(t, adminId, &CreatePostReq{})
	_, httpErr := env.posts.CreateCommunityPost(env.ctx, adminId, communityId, &CreatePostReq{Title: "t", Description: "d"})
	require.Nil(t, httpErr)
	_, httpErr = env.posts.CreateCommunityPost(env.ctx, adminId, otherId, &CreatePostReq{Title: "t", Description: "d"})
	require.Nil(t, httpErr)

	general, httpErr := env.posts.GetFeed(env.ctx, readerId, feedQuery(1, 5))
	require.Nil(t, httpErr)
	require.Len(t, general.Posts, 1)
	assert.Nil(t, general.Posts[0].CommunityId)

	require.Nil(t, env.communities.Subscribe(env.ctx, readerId, communityId))
	mine, httpErr := env.posts.GetFeed(env.ctx, readerId, &app.FeedQuery{OnlyMyCommunities: true, Page: 1, Size: 5})
	require.Nil(t, httpErr)
	require.Len(t, mine.Posts, 1)
	require.NotNil(t, mine.Posts[0].CommunityName)
	assert.Equal(t, "Gophers", *mine.Posts[0].CommunityName)

	_, httpErr = env.posts.GetFeed(env.ctx, "", &app.FeedQuery{OnlyMyCommunities: true, Page: 1, Size: 5})
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrUnauthorized)
}

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)
	authorId := env.register(t, "Ada", "ada@example.com")

	_, httpErr := env.posts.CreatePost(env.ctx, authorId, &CreatePostReq{Title: " ", Description: "d"})
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrValidationFailed)

	_, httpErr = env.posts.CreatePost(env.ctx, authorId, &CreatePostReq{Title: "t", Description: "d", Tags: []string{util.NewId()}})
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrTagNotFound)

	_, httpErr = env.posts.CreatePost(env.ctx, authorId, &CreatePostReq{Title: "t", Description: "d", AddressId: strPtr(util.NewId())})
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrAddressElementNotFound)

	_, httpErr = env.posts.CreatePost(env.ctx, authorId, &CreatePostReq{Title: "t", Description: "d", Image: strPtr("not a link")})
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrBadImageLink)

	page, httpErr := env.posts.GetFeed(env.ctx, "", feedQuery(1, 5))
	require.Nil(t, httpErr)
	assert.Empty(t, page.Posts)
}

func TestCreatePostSanitizesAndCopiesAuthor(t *testing.T) {
	env := newTestEnv(t)
	authorId := env.register(t, "Ada Lovelace", "ada@example.com")

	id, httpErr := env.posts.CreatePost(env.ctx, authorId, &CreatePostReq{
		Title:       "<script>alert(1)</script>Hello",
		Description: "<b>bold</b> move",
		Image:       strPtr("https://img.example.com/a.png"),
	})
	require.Nil(t, httpErr)

	post, httpErr := env.posts.GetPost(env.ctx, "", id)
	require.Nil(t, httpErr)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "<b>bold</b> move", post.Description)
	assert.Equal(t, "Ada Lovelace", post.Author)
	require.NotNil(t, post.Image)
	assert.Equal(t, "https://img.example.com/a.png", *post.Image)
}

func TestCreatePostImageFromBucket(t *testing.T) {
	env := newTestEnv(t)
	env.posts = NewPostController(env.store, fakeImages{"uploads/cat.png": true})
	authorId := env.register(t, "Ada", "ada@example.com")

	_, httpErr := env.posts.CreatePost(env.ctx, authorId, &CreatePostReq{Title: "t", Description: "d", Image: strPtr("uploads/cat.png")})
	assert.Nil(t, httpErr)

	_, httpErr = env.posts.CreatePost(env.ctx, authorId, &CreatePostReq{Title: "t", Description: "d", Image: strPtr("uploads/dog.png")})
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrBadImageLink)
}

func TestCreateCommunityPostRequiresAdministrator(t *testing.T) {
	env := newTestEnv(t)
	adminId := env.register(t, "Ada", "ada@example.com")
	subscriberId := env.register(t, "Grace", "grace@example.com")
	communityId := env.createCommunity(t, adminId, "Gophers", false)
	require.Nil(t, env.communities.Subscribe(env.ctx, subscriberId, communityId))

	_, httpErr := env.posts.CreateCommunityPost(env.ctx, subscriberId, communityId, &CreatePostReq{Title: "t", Description: "d"})
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrNotAdministrator)

	_, httpErr = env.posts.CreateCommunityPost(env.ctx, adminId, util.NewId(), &CreatePostReq{Title: "t", Description: "d"})
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrCommunityNotFound)
}

func TestGetPost(t *testing.T) {
	env := newTestEnv(t)
	authorId := env.register(t, "Ada", "ada@example.com")
	postId := env.createPost(t, authorId, &CreatePostReq{})
	rootId := env.comment(t, authorId, postId, nil)
	env.comment(t, authorId, postId, &rootId)

	post, httpErr := env.posts.GetPost(env.ctx, authorId, postId)
	require.Nil(t, httpErr)
	assert.Equal(t, 2, post.CommentsCount)
	require.Len(t, post.Comments, 1, "only top level comments are listed")
	assert.Equal(t, rootId, post.Comments[0].Id)
	assert.Equal(t, 1, post.Comments[0].SubComments)

	_, httpErr = env.posts.GetPost(env.ctx, authorId, util.NewId())
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrPostNotFound)
}

func TestGetPostInClosedCommunity(t *testing.T) {
	env := newTestEnv(t)
	adminId := env.register(t, "Ada", "ada@example.com")
	outsiderId := env.register(t, "Grace", "grace@example.com")
	communityId := env.createCommunity(t, adminId, "Secret", true)
	postId, httpErr := env.posts.CreateCommunityPost(env.ctx, adminId, communityId, &CreatePostReq{Title: "t", Description: "d"})
	require.Nil(t, httpErr)

	_, httpErr = env.posts.GetPost(env.ctx, outsiderId, postId)
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrForbiddenClosedCommunity)

	_, httpErr = env.posts.GetPost(env.ctx, "", postId)
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrForbiddenClosedCommunity)

	_, httpErr = env.posts.GetPost(env.ctx, adminId, postId)
	assert.Nil(t, httpErr)
}

func TestLikeAndUnlike(t *testing.T) {
	env := newTestEnv(t)
	authorId := env.register(t, "Ada", "ada@example.com")
	readerId := env.register(t, "Grace", "grace@example.com")
	postId := env.createPost(t, authorId, &CreatePostReq{})

	require.Nil(t, env.posts.Like(env.ctx, readerId, postId))
	httpErr := env.posts.Like(env.ctx, readerId, postId)
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrLikeAlreadyExists)

	post, httpErr := env.posts.GetPost(env.ctx, readerId, postId)
	require.Nil(t, httpErr)
	assert.Equal(t, 1, post.Likes)
	assert.True(t, post.HasLike)

	require.Nil(t, env.posts.Unlike(env.ctx, readerId, postId))
	httpErr = env.posts.Unlike(env.ctx, readerId, postId)
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrLikeNotFound)

	post, httpErr = env.posts.GetPost(env.ctx, readerId, postId)
	require.Nil(t, httpErr)
	assert.Equal(t, 0, post.Likes)
	assert.False(t, post.HasLike)

	httpErr = env.posts.Like(env.ctx, readerId, util.NewId())
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrPostNotFound)
}
