package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/navbryce/next-blog-be/app"
	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/services"
	"github.com/navbryce/next-blog-be/util"
	"github.com/rs/zerolog/log"
)

type PostController struct {
	db     db.Database
	images services.ImageStore
	now    func() time.Time
}

// NewPostController accepts a nil images store, in which case only http(s) image links are allowed
func NewPostController(database db.Database, images services.ImageStore) *PostController {
	return &PostController{
		db:     database,
		images: images,
		now:    time.Now,
	}
}

type CreatePostReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ReadingTime int      `json:"readingTime"`
	Image       *string  `json:"image"`
	AddressId   *string  `json:"addressId"`
	Tags        []string `json:"tags"`
}

func (pc *PostController) GetFeed(ctx context.Context, viewerId string, query *app.FeedQuery) (*model.PostPage, *util.HTTPError) {
	page, err := app.GetFeed(ctx, pc.db, viewerId, query)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return page, nil
}

func (pc *PostController) CreatePost(ctx context.Context, userId string, req *CreatePostReq) (string, *util.HTTPError) {
	return pc.createPost(ctx, userId, nil, req)
}

// CreateCommunityPost is reserved to the community's administrators
func (pc *PostController) CreateCommunityPost(ctx context.Context, userId string, communityId string, req *CreatePostReq) (string, *util.HTTPError) {
	community, err := pc.db.GetCommunityById(ctx, communityId)
	if err != nil {
		return "", util.BuildDbHTTPErr(err)
	}
	if community == nil {
		return "", util.ErrCommunityNotFound
	}
	role, err := pc.db.GetCommunityRole(ctx, userId, communityId)
	if err != nil {
		return "", util.BuildDbHTTPErr(err)
	}
	if role == nil || role.Role != model.RoleAdministrator {
		return "", util.ErrNotAdministrator
	}
	return pc.createPost(ctx, userId, community, req)
}

func (pc *PostController) createPost(ctx context.Context, userId string, community *model.Community, req *CreatePostReq) (string, *util.HTTPError) {
	title := util.XSSSanitize(req.Title)
	description := util.XSSSanitize(req.Description)
	if title == "" || description == "" {
		return "", util.ErrValidationFailed.Withf("title and description must not be empty")
	}
	if req.ReadingTime < 0 {
		return "", util.ErrValidationFailed.Withf("reading time must not be negative")
	}

	author, httpErr := getUser(ctx, pc.db, userId)
	if httpErr != nil {
		return "", httpErr
	}
	tagIds, httpErr := pc.validateTags(ctx, req.Tags)
	if httpErr != nil {
		return "", httpErr
	}
	addressId, httpErr := pc.validateAddress(ctx, req.AddressId)
	if httpErr != nil {
		return "", httpErr
	}
	image, httpErr := pc.validateImage(ctx, req.Image)
	if httpErr != nil {
		return "", httpErr
	}

	createPost := &db.CreatePost{
		Id:          util.NewId(),
		CreatedAt:   pc.now().UTC(),
		Title:       title,
		Description: description,
		ReadingTime: req.ReadingTime,
		Image:       image,
		AuthorId:    author.Id,
		Author:      author.FullName,
		AddressId:   addressId,
		TagIds:      tagIds,
	}
	if community != nil {
		createPost.CommunityId = &community.Id
		createPost.CommunityName = &community.Name
	}
	if err := pc.db.CreatePost(ctx, createPost); err != nil {
		return "", util.BuildDbHTTPErr(err)
	}
	log.Info().Str("postId", createPost.Id).Str("authorId", userId).Msg("post created")
	return createPost.Id, nil
}

func (pc *PostController) validateTags(ctx context.Context, tags []string) ([]string, *util.HTTPError) {
	seen := make(map[string]bool, len(tags))
	tagIds := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !seen[tag] {
			seen[tag] = true
			tagIds = append(tagIds, tag)
		}
	}
	if len(tagIds) == 0 {
		return tagIds, nil
	}
	found, err := pc.db.GetTagsByIds(ctx, tagIds)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if len(found) != len(tagIds) {
		return nil, util.ErrTagNotFound.Withf("at least one of the tags does not exist")
	}
	return tagIds, nil
}

func (pc *PostController) validateAddress(ctx context.Context, addressId *string) (*string, *util.HTTPError) {
	if !present(addressId) {
		return nil, nil
	}
	guid := strings.TrimSpace(*addressId)
	address, err := pc.db.GetAddressByGuid(ctx, guid)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if address != nil {
		return &guid, nil
	}
	house, err := pc.db.GetHouseByGuid(ctx, guid)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if house == nil {
		return nil, util.ErrAddressElementNotFound
	}
	return &guid, nil
}

func (pc *PostController) validateImage(ctx context.Context, image *string) (*string, *util.HTTPError) {
	if !present(image) {
		return nil, nil
	}
	link := strings.TrimSpace(*image)
	if util.IsImageURL(link) {
		return &link, nil
	}
	if pc.images == nil {
		return nil, util.ErrBadImageLink
	}
	exists, err := pc.images.Exists(ctx, link)
	if err != nil {
		return nil, util.BuildInternalHTTPErr(err)
	}
	if !exists {
		return nil, util.ErrBadImageLink
	}
	return &link, nil
}

func (pc *PostController) getPost(ctx context.Context, viewerId string, postId string) (*model.Post, *util.HTTPError) {
	post, err := pc.db.GetPostById(ctx, postId, &db.PostQueryOpts{LikesOf: viewerId})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, util.ErrPostNotFound
	}
	return post, nil
}

func (pc *PostController) GetPost(ctx context.Context, viewerId string, postId string) (*model.PostWithComments, *util.HTTPError) {
	post, httpErr := pc.getPost(ctx, viewerId, postId)
	if httpErr != nil {
		return nil, httpErr
	}
	if httpErr := checkCommunityAccess(ctx, pc.db, viewerId, post.CommunityId); httpErr != nil {
		return nil, httpErr
	}
	comments, err := pc.db.GetRootComments(ctx, postId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return &model.PostWithComments{Post: post, Comments: comments}, nil
}

func (pc *PostController) Like(ctx context.Context, userId string, postId string) *util.HTTPError {
	if _, httpErr := pc.getPost(ctx, "", postId); httpErr != nil {
		return httpErr
	}
	if err := pc.db.AddLike(ctx, postId, userId); err != nil {
		switch {
		case errors.Is(err, db.ErrDuplicateKey):
			return util.ErrLikeAlreadyExists
		case errors.Is(err, db.ErrNotFound):
			return util.ErrPostNotFound
		}
		return util.BuildDbHTTPErr(err)
	}
	return nil
}

func (pc *PostController) Unlike(ctx context.Context, userId string, postId string) *util.HTTPError {
	if _, httpErr := pc.getPost(ctx, "", postId); httpErr != nil {
		return httpErr
	}
	if err := pc.db.RemoveLike(ctx, postId, userId); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return util.ErrLikeNotFound
		}
		return util.BuildDbHTTPErr(err)
	}
	return nil
}
