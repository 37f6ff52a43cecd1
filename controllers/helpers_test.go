package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/navbryce/next-blog-be/db/inmemory"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	ctx         context.Context
	store       *inmemory.Store
	tokens      *services.TokenService
	auth        *AuthController
	users       *UserController
	posts       *PostController
	comments    *CommentController
	communities *CommunityController
	tags        *TagController
	authors     *AuthorController
	addresses   *AddressController
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := inmemory.New()
	tokens := services.NewTokenService(services.TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		Issuer:        "next-blog-be",
		Audience:      "next-blog-fe",
		AccessTTL:     30 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	}, store)
	auth := NewAuthController(store, tokens)
	auth.hashCost = bcrypt.MinCost
	return &testEnv{
		ctx:         context.Background(),
		store:       store,
		tokens:      tokens,
		auth:        auth,
		users:       NewUserController(store),
		posts:       NewPostController(store, nil),
		comments:    NewCommentController(store),
		communities: NewCommunityController(store),
		tags:        NewTagController(store),
		authors:     NewAuthorController(store),
		addresses:   NewAddressController(store),
	}
}

// register creates an account and returns its user id
func (env *testEnv) register(t *testing.T, fullName string, email string) string {
	t.Helper()
	pair, httpErr := env.auth.Register(env.ctx, &RegisterReq{
		FullName: fullName,
		Password: "secret123",
		Email:    email,
		Gender:   string(model.GenderFemale),
	})
	require.Nil(t, httpErr)
	userId, httpErr := env.tokens.ParseAccessToken(pair.AccessToken)
	require.Nil(t, httpErr)
	return userId
}

func (env *testEnv) createTag(t *testing.T, name string) string {
	t.Helper()
	tag, httpErr := env.tags.Create(env.ctx, &CreateTagReq{Name: name})
	require.Nil(t, httpErr)
	return tag.Id
}

func (env *testEnv) createPost(t *testing.T, userId string, req *CreatePostReq) string {
	t.Helper()
	if req.Title == "" {
		req.Title = "title"
	}
	if req.Description == "" {
		req.Description = "description"
	}
	id, httpErr := env.posts.CreatePost(env.ctx, userId, req)
	require.Nil(t, httpErr)
	return id
}

func (env *testEnv) createCommunity(t *testing.T, adminId string, name string, closed bool) string {
	t.Helper()
	community, httpErr := env.communities.CreateCommunity(env.ctx, adminId, &CreateCommunityReq{
		Name:     name,
		IsClosed: closed,
	})
	require.Nil(t, httpErr)
	return community.Id
}

func (env *testEnv) comment(t *testing.T, userId string, postId string, parentId *string) string {
	t.Helper()
	id, httpErr := env.comments.Create(env.ctx, userId, postId, &CreateCommentReq{
		Content:  "a comment",
		ParentId: parentId,
	})
	require.Nil(t, httpErr)
	return id
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

type fakeImages map[string]bool

func (fi fakeImages) Exists(ctx context.Context, blobName string) (bool, error) {
	return fi[blobName], nil
}
