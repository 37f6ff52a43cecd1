package db

import (
	"context"
	"time"

	"github.com/navbryce/next-blog-be/model"

	_ "github.com/go-sql-driver/mysql"
)

// Database getters return (nil, nil) when the row does not exist
type Database interface {
	UserDatabase
	TokenDatabase
	PostDatabase
	CommentDatabase
	CommunityDatabase
	TagDatabase
	AddressDatabase
	Close() error
}

type UpdateUser struct {
	FullName    *string
	Email       *string
	BirthDate   *time.Time
	Gender      *model.Gender
	PhoneNumber *string
}

func (uu *UpdateUser) IsEmpty() bool {
	return uu.FullName == nil && uu.Email == nil && uu.BirthDate == nil && uu.Gender == nil && uu.PhoneNumber == nil
}

type UserDatabase interface {
	// CreateUser fails with ErrDuplicateKey when the email is taken
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUsersByIds(ctx context.Context, ids []string) ([]*model.User, error)
	UpdateUser(ctx context.Context, id string, req *UpdateUser) error
	// FindUserIdsByName matches a case-insensitive substring of the full name
	FindUserIdsByName(ctx context.Context, name string) ([]string, error)
	GetAuthors(ctx context.Context) ([]*model.Author, error)
}

type TokenDatabase interface {
	GetRefreshToken(ctx context.Context, token string) (*model.RefreshToken, error)
	GetRefreshTokenForUser(ctx context.Context, userId string) (*model.RefreshToken, error)
	// ReplaceRefreshToken drops every token held by the owner before storing the new one
	ReplaceRefreshToken(ctx context.Context, token *model.RefreshToken) error
	RevokeRefreshToken(ctx context.Context, token string) error
	DeleteStaleRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

type CreatePost struct {
	Id            string
	CreatedAt     time.Time
	Title         string
	Description   string
	ReadingTime   int
	Image         *string
	AuthorId      string
	Author        string
	CommunityId   *string
	CommunityName *string
	AddressId     *string
	TagIds        []string
}

type PostQueryOpts struct {
	LikesOf string // fills Post.HasLike for this user
}

// PostsListQuery filters posts. A nil slice means "no filter"; an empty
// non-nil AuthorIds or CommunityIds matches nothing.
type PostsListQuery struct {
	AuthorIds        []string
	CommunityIds     []string
	WithoutCommunity bool
	TagIds           []string
	MinReadingTime   *int
	MaxReadingTime   *int
	Sort             model.PostSorting
	Limit            int
	Offset           int
	*PostQueryOpts
}

func (q *PostsListQuery) MatchesNothing() bool {
	return (q.AuthorIds != nil && len(q.AuthorIds) == 0) ||
		(q.CommunityIds != nil && len(q.CommunityIds) == 0)
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) error
	GetPostById(ctx context.Context, id string, opts *PostQueryOpts) (*model.Post, error)
	GetPosts(ctx context.Context, query *PostsListQuery) ([]*model.Post, error)
	CountPosts(ctx context.Context, query *PostsListQuery) (int, error)
	// AddLike fails with ErrDuplicateKey when the like exists
	AddLike(ctx context.Context, postId string, userId string) error
	// RemoveLike fails with ErrNotFound when there is nothing to remove
	RemoveLike(ctx context.Context, postId string, userId string) error
	HasLike(ctx context.Context, postId string, userId string) (bool, error)
}

type CommentDatabase interface {
	// CreateComment bumps the parent's sub comment count and the post's comment count
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentById(ctx context.Context, id string) (*model.Comment, error)
	GetRootComments(ctx context.Context, postId string) ([]*model.Comment, error)
	GetCommentsByPostId(ctx context.Context, postId string) ([]*model.Comment, error)
	UpdateCommentContent(ctx context.Context, id string, content string, modifiedAt time.Time) error
	SoftDeleteComment(ctx context.Context, id string, deletedAt time.Time) error
	// DeleteComment removes a comment without replies and reverses the counter changes
	// made by CreateComment. A comment that has replies yields ErrNotFound.
	DeleteComment(ctx context.Context, comment *model.Comment) error
}

type CommunityDatabase interface {
	// CreateCommunity stores the community with adminId as its Administrator
	CreateCommunity(ctx context.Context, community *model.Community, adminId string) error
	GetCommunities(ctx context.Context) ([]*model.Community, error)
	GetCommunityById(ctx context.Context, id string) (*model.Community, error)
	GetCommunityRole(ctx context.Context, userId string, communityId string) (*model.UserCommunityRole, error)
	GetRolesForUser(ctx context.Context, userId string) ([]*model.UserCommunityRole, error)
	GetCommunityAdminIds(ctx context.Context, communityId string) ([]string, error)
	// AddSubscriber fails with ErrDuplicateKey when the user already holds a role
	AddSubscriber(ctx context.Context, userId string, communityId string) error
	// RemoveSubscriber fails with ErrNotFound when the user holds no Subscriber role
	RemoveSubscriber(ctx context.Context, userId string, communityId string) error
}

type TagDatabase interface {
	GetTags(ctx context.Context) ([]*model.Tag, error)
	GetTagsByIds(ctx context.Context, ids []string) ([]*model.Tag, error)
	// CreateTag fails with ErrDuplicateKey when the name is taken
	CreateTag(ctx context.Context, tag *model.Tag) error
}

// AddressDatabase reads the registry. The latest record by start date wins.
type AddressDatabase interface {
	GetHierarchyChildren(ctx context.Context, parentObjectId int64) ([]*model.HierarchyAddress, error)
	GetHierarchyByObjectId(ctx context.Context, objectId int64) (*model.HierarchyAddress, error)
	GetAddressByObjectId(ctx context.Context, objectId int64) (*model.Address, error)
	GetAddressByGuid(ctx context.Context, guid string) (*model.Address, error)
	GetHouseByObjectId(ctx context.Context, objectId int64) (*model.HousesAddress, error)
	GetHouseByGuid(ctx context.Context, guid string) (*model.HousesAddress, error)
}
