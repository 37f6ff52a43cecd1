package controllers

import (
	"context"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
)

type MessageRes struct {
	Message string `json:"message"`
}

// checkCommunityAccess lets anyone into an open community and only role holders into a closed one.
// A nil communityId means the general feed.
func checkCommunityAccess(ctx context.Context, database db.CommunityDatabase, viewerId string, communityId *string) *util.HTTPError {
	if communityId == nil {
		return nil
	}
	community, err := database.GetCommunityById(ctx, *communityId)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if community == nil {
		return util.ErrCommunityNotFound
	}
	return checkClosedCommunity(ctx, database, viewerId, community)
}

func checkClosedCommunity(ctx context.Context, database db.CommunityDatabase, viewerId string, community *model.Community) *util.HTTPError {
	if !community.IsClosed {
		return nil
	}
	if viewerId == "" {
		return util.ErrForbiddenClosedCommunity
	}
	role, err := database.GetCommunityRole(ctx, viewerId, community.Id)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if role == nil {
		return util.ErrForbiddenClosedCommunity
	}
	return nil
}

func getUser(ctx context.Context, database db.UserDatabase, userId string) (*model.User, *util.HTTPError) {
	user, err := database.GetUserById(ctx, userId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if user == nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}
