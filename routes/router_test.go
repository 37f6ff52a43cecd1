package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/db/inmemory"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/services"
	"github.com/navbryce/next-blog-be/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	store := inmemory.New()
	tokens := services.NewTokenService(services.TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		Issuer:        "issuer",
		Audience:      "audience",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	}, store)
	r := gin.New()
	Register(r, &Deps{Database: store, Tokens: tokens})
	return &testServer{t: t, router: r}
}

func (ts *testServer) do(method string, path string, token string, body interface{}) *httptest.ResponseRecorder {
	ts.t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) register(email string) *model.TokenPair {
	ts.t.Helper()
	w := ts.do(http.MethodPost, "/api/account/register", "", gin.H{
		"fullName": "Ada Lovelace",
		"password": "secret123",
		"email":    email,
		"gender":   "Female",
	})
	require.Equal(ts.t, http.StatusOK, w.Code, w.Body.String())
	var pair model.TokenPair
	require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &pair))
	return &pair
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *util.HTTPError {
	t.Helper()
	var httpErr util.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &httpErr))
	return &httpErr
}

func TestAccountFlow(t *testing.T) {
	ts := newTestServer(t)
	pair := ts.register("ada@example.com")

	w := ts.do(http.MethodGet, "/api/account/profile", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "ada@example.com", profile["email"])
	assert.NotContains(t, profile, "passwordHash")

	w = ts.do(http.MethodPost, "/api/account/register", "", gin.H{
		"fullName": "Ada Lovelace", "password": "secret123", "email": "ada@example.com", "gender": "Female",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, http.StatusConflict, decodeError(t, w).Status)

	w = ts.do(http.MethodPost, "/api/account/refresh", "", gin.H{"refreshToken": pair.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	w = ts.do(http.MethodPost, "/api/account/logout", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/api/account/profile", pair.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginErrorBody(t *testing.T) {
	ts := newTestServer(t)
	ts.register("ada@example.com")

	w := ts.do(http.MethodPost, "/api/account/login", "", gin.H{"email": "ada@example.com", "password": "nope-nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Wrong email or password", decodeError(t, w).Message)
}

func TestPostFlow(t *testing.T) {
	ts := newTestServer(t)
	pair := ts.register("ada@example.com")

	w := ts.do(http.MethodPost, "/api/post", pair.AccessToken, gin.H{
		"title": "Hello", "description": "World", "readingTime": 3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var postId string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &postId))

	w = ts.do(http.MethodPost, "/api/post/"+postId+"/like", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.do(http.MethodPost, "/api/post/"+postId+"/like", pair.AccessToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(http.MethodPost, "/api/post/"+postId+"/comment", pair.AccessToken, gin.H{"content": "first"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.do(http.MethodGet, "/api/post?page=1&size=5&sorting=LikeDesc", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page model.PostPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Posts, 1)
	assert.True(t, page.Posts[0].HasLike)
	assert.Equal(t, 1, page.Posts[0].Likes)
	assert.Equal(t, 1, page.Posts[0].CommentsCount)
	assert.Equal(t, model.PageInfo{Size: 5, Count: 1, Current: 1}, page.Pagination)

	w = ts.do(http.MethodGet, "/api/post/"+postId, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hasLike":false`)
	assert.Contains(t, w.Body.String(), `"comments":[`)

	w = ts.do(http.MethodGet, "/api/post?page=2", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/api/post?sorting=Sideways", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/api/post/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPost, "/api/post", "", gin.H{"title": "t", "description": "d"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCommunityRoleIsNullWithoutMembership(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.register("ada@example.com")
	reader := ts.register("grace@example.com")

	w := ts.do(http.MethodPost, "/api/community", admin.AccessToken, gin.H{"name": "Gophers"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var community model.Community
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &community))

	w = ts.do(http.MethodGet, "/api/community/"+community.Id+"/role", reader.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	w = ts.do(http.MethodPost, "/api/community/"+community.Id+"/subscribe", reader.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/api/community/"+community.Id+"/role", reader.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"Subscriber"`, w.Body.String())

	w = ts.do(http.MethodGet, "/api/community/my", reader.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), community.Id)

	w = ts.do(http.MethodDelete, "/api/community/"+community.Id+"/unsubscribe", admin.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPublicEndpoints(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/tag", "/api/community", "/api/author/list", "/api/address/search", "/health"} {
		w := ts.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := ts.do(http.MethodGet, "/api/address/chain?objectGuid="+util.NewId(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodGet, "/api/address/search?parentObjectId=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/api/post", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
