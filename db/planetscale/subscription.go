package planetscale

import (
	"context"

	appDb "github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/upper/db/v4"
)

// SubscriptionDB owns community_role and the subscriber counter
type SubscriptionDB struct {
	sess db.Session
}

func getSubscriptionDB(sess db.Session) *SubscriptionDB {
	return &SubscriptionDB{sess}
}

func (sdb *SubscriptionDB) GetCommunityRole(ctx context.Context, userId string, communityId string) (*model.UserCommunityRole, error) {
	var role model.UserCommunityRole
	if err := sdb.sess.WithContext(ctx).
		Collection("community_role").
		Find("user_id = ? AND community_id = ?", userId, communityId).
		One(&role); err != nil {
		return nil, ignoreNoRows(err)
	}
	return &role, nil
}

func (sdb *SubscriptionDB) GetRolesForUser(ctx context.Context, userId string) ([]*model.UserCommunityRole, error) {
	roles := []*model.UserCommunityRole{}
	err := sdb.sess.WithContext(ctx).
		Collection("community_role").
		Find("user_id = ?", userId).
		OrderBy("community_id").
		All(&roles)
	return roles, err
}

func (sdb *SubscriptionDB) GetCommunityAdminIds(ctx context.Context, communityId string) ([]string, error) {
	var roles []model.UserCommunityRole
	if err := sdb.sess.WithContext(ctx).
		Collection("community_role").
		Find("community_id = ? AND role = ?", communityId, model.RoleAdministrator).
		OrderBy("user_id").
		All(&roles); err != nil {
		return nil, err
	}
	ids := make([]string, len(roles))
	for i, role := range roles {
		ids[i] = role.UserId
	}
	return ids, nil
}

func (sdb *SubscriptionDB) AddSubscriber(ctx context.Context, userId string, communityId string) error {
	return sdb.sess.TxContext(ctx, func(sess db.Session) error {
		if _, err := sess.SQL().
			InsertInto("community_role").
			Columns("user_id", "community_id", "role").
			Values(userId, communityId, model.RoleSubscriber).
			ExecContext(ctx); err != nil {
			return appDb.TranslateErr(err)
		}
		return requireAffected(sess.SQL().
			Update("community").
			Set("subscribers_count = subscribers_count + ?", 1).
			Where("id = ?", communityId).
			ExecContext(ctx))
	}, txOpts)
}

func (sdb *SubscriptionDB) RemoveSubscriber(ctx context.Context, userId string, communityId string) error {
	return sdb.sess.TxContext(ctx, func(sess db.Session) error {
		if err := requireAffected(sess.SQL().
			DeleteFrom("community_role").
			Where("user_id = ? AND community_id = ? AND role = ?", userId, communityId, model.RoleSubscriber).
			ExecContext(ctx)); err != nil {
			return err
		}
		_, err := sess.SQL().
			Update("community").
			Set("subscribers_count = GREATEST(subscribers_count - ?, 0)", 1).
			Where("id = ?", communityId).
			ExecContext(ctx)
		return err
	}, txOpts)
}
