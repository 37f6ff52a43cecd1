package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/navbryce/next-blog-be/app"
	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
	"github.com/rs/zerolog/log"
)

type CommunityController struct {
	db  db.Database
	now func() time.Time
}

func NewCommunityController(database db.Database) *CommunityController {
	return &CommunityController{db: database, now: time.Now}
}

type CreateCommunityReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsClosed    bool   `json:"isClosed"`
}

func (cc *CommunityController) getCommunity(ctx context.Context, id string) (*model.Community, *util.HTTPError) {
	community, err := cc.db.GetCommunityById(ctx, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if community == nil {
		return nil, util.ErrCommunityNotFound
	}
	return community, nil
}

func (cc *CommunityController) CreateCommunity(ctx context.Context, userId string, req *CreateCommunityReq) (*model.Community, *util.HTTPError) {
	name := util.XSSSanitize(req.Name)
	if name == "" {
		return nil, util.ErrValidationFailed.Withf("community name must not be empty")
	}
	if _, httpErr := getUser(ctx, cc.db, userId); httpErr != nil {
		return nil, httpErr
	}
	community := &model.Community{
		Id:          util.NewId(),
		CreatedAt:   cc.now().UTC(),
		Name:        name,
		Description: util.XSSSanitize(req.Description),
		IsClosed:    req.IsClosed,
	}
	if err := cc.db.CreateCommunity(ctx, community, userId); err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	log.Info().Str("communityId", community.Id).Str("adminId", userId).Msg("community created")
	return cc.getCommunity(ctx, community.Id)
}

func (cc *CommunityController) List(ctx context.Context) ([]*model.Community, *util.HTTPError) {
	communities, err := cc.db.GetCommunities(ctx)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return communities, nil
}

func (cc *CommunityController) Mine(ctx context.Context, userId string) ([]*model.UserCommunityRole, *util.HTTPError) {
	roles, err := cc.db.GetRolesForUser(ctx, userId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return roles, nil
}

func (cc *CommunityController) Info(ctx context.Context, communityId string) (*model.CommunityWithAdmins, *util.HTTPError) {
	community, httpErr := cc.getCommunity(ctx, communityId)
	if httpErr != nil {
		return nil, httpErr
	}
	adminIds, err := cc.db.GetCommunityAdminIds(ctx, communityId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	admins := []*model.UserProfile{} // never encode null
	if len(adminIds) > 0 {
		users, err := cc.db.GetUsersByIds(ctx, adminIds)
		if err != nil {
			return nil, util.BuildDbHTTPErr(err)
		}
		for _, user := range users {
			admins = append(admins, user.Profile())
		}
	}
	return &model.CommunityWithAdmins{Community: community, Administrators: admins}, nil
}

func (cc *CommunityController) Posts(ctx context.Context, viewerId string, communityId string, query *app.FeedQuery) (*model.PostPage, *util.HTTPError) {
	community, httpErr := cc.getCommunity(ctx, communityId)
	if httpErr != nil {
		return nil, httpErr
	}
	if httpErr := checkClosedCommunity(ctx, cc.db, viewerId, community); httpErr != nil {
		return nil, httpErr
	}
	page, err := app.GetCommunityFeed(ctx, cc.db, viewerId, community.Id, query)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return page, nil
}

// Role is nil when the user holds no role in the community
func (cc *CommunityController) Role(ctx context.Context, userId string, communityId string) (*model.CommunityRole, *util.HTTPError) {
	if _, httpErr := cc.getCommunity(ctx, communityId); httpErr != nil {
		return nil, httpErr
	}
	role, err := cc.db.GetCommunityRole(ctx, userId, communityId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if role == nil {
		return nil, nil
	}
	return &role.Role, nil
}

func (cc *CommunityController) Subscribe(ctx context.Context, userId string, communityId string) *util.HTTPError {
	if _, httpErr := cc.getCommunity(ctx, communityId); httpErr != nil {
		return httpErr
	}
	if err := cc.db.AddSubscriber(ctx, userId, communityId); err != nil {
		switch {
		case errors.Is(err, db.ErrDuplicateKey):
			return util.ErrAlreadyMember
		case errors.Is(err, db.ErrNotFound):
			return util.ErrCommunityNotFound
		}
		return util.BuildDbHTTPErr(err)
	}
	return nil
}

func (cc *CommunityController) Unsubscribe(ctx context.Context, userId string, communityId string) *util.HTTPError {
	if _, httpErr := cc.getCommunity(ctx, communityId); httpErr != nil {
		return httpErr
	}
	role, err := cc.db.GetCommunityRole(ctx, userId, communityId)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if role == nil {
		return util.ErrNotMember
	}
	if role.Role == model.RoleAdministrator {
		return util.ErrAdministratorCannotUnsubscribe
	}
	if err := cc.db.RemoveSubscriber(ctx, userId, communityId); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return util.ErrNotMember
		}
		return util.BuildDbHTTPErr(err)
	}
	return nil
}
