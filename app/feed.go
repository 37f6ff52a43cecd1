package app

import (
	"context"
	"strings"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 5
)

type FeedQuery struct {
	TagIds            []string
	Author            string
	MinReadingTime    *int
	MaxReadingTime    *int
	Sorting           model.PostSorting
	OnlyMyCommunities bool
	Page              int
	Size              int
}

// GetFeed lists posts that belong to no community, or with OnlyMyCommunities,
// posts from communities the viewer holds a role in
func GetFeed(ctx context.Context, database db.Database, viewerId string, query *FeedQuery) (*model.PostPage, error) {
	listQuery, err := buildListQuery(ctx, database, viewerId, query)
	if err != nil {
		return nil, err
	}
	if query.OnlyMyCommunities {
		if viewerId == "" {
			return nil, util.ErrUnauthorized
		}
		communityIds, err := getRoleCommunityIds(ctx, database, viewerId)
		if err != nil {
			return nil, err
		}
		listQuery.CommunityIds = communityIds
	} else {
		listQuery.WithoutCommunity = true
	}
	return paginate(ctx, database, listQuery, query.Page, query.Size)
}

// GetCommunityFeed lists the posts of one community. Access checks belong to the caller.
func GetCommunityFeed(ctx context.Context, database db.Database, viewerId string, communityId string, query *FeedQuery) (*model.PostPage, error) {
	listQuery, err := buildListQuery(ctx, database, viewerId, query)
	if err != nil {
		return nil, err
	}
	listQuery.CommunityIds = []string{communityId}
	return paginate(ctx, database, listQuery, query.Page, query.Size)
}

func buildListQuery(ctx context.Context, database db.Database, viewerId string, query *FeedQuery) (*db.PostsListQuery, error) {
	if query.Page < 1 || query.Size < 1 {
		return nil, util.ErrInvalidPagination.Withf("page and size must be positive")
	}
	sorting := query.Sorting
	if sorting == "" {
		sorting = model.SortCreateDesc
	}
	listQuery := &db.PostsListQuery{
		TagIds:         query.TagIds,
		MinReadingTime: query.MinReadingTime,
		MaxReadingTime: query.MaxReadingTime,
		Sort:           sorting,
		PostQueryOpts:  &db.PostQueryOpts{LikesOf: viewerId},
	}
	if author := strings.TrimSpace(query.Author); author != "" {
		authorIds, err := database.FindUserIdsByName(ctx, author)
		if err != nil {
			return nil, err
		}
		if authorIds == nil {
			authorIds = []string{}
		}
		listQuery.AuthorIds = authorIds
	}
	return listQuery, nil
}

func getRoleCommunityIds(ctx context.Context, database db.Database, userId string) ([]string, error) {
	roles, err := database.GetRolesForUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(roles))
	for i, role := range roles {
		ids[i] = role.CommunityId
	}
	return ids, nil
}

// PageCount is never below one so that the first page of an empty feed is valid
func PageCount(count int, size int) int {
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

func paginate(ctx context.Context, database db.Database, listQuery *db.PostsListQuery, page int, size int) (*model.PostPage, error) {
	count, err := database.CountPosts(ctx, listQuery)
	if err != nil {
		return nil, err
	}
	if page > PageCount(count, size) {
		return nil, util.ErrInvalidPagination.Withf("page %v is out of range", page)
	}

	listQuery.Limit = size
	listQuery.Offset = (page - 1) * size
	posts, err := database.GetPosts(ctx, listQuery)
	if err != nil {
		return nil, err
	}
	return &model.PostPage{
		Posts: posts,
		Pagination: model.PageInfo{
			Size:    size,
			Count:   count,
			Current: page,
		},
	}, nil
}
