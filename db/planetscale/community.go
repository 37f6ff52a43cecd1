package planetscale

import (
	"context"

	appDb "github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/upper/db/v4"
)

type CommunityDB struct {
	sess db.Session
}

func getCommunityDB(sess db.Session) *CommunityDB {
	return &CommunityDB{sess}
}

var communityColumns = []string{"id", "created_at", "name", "description", "is_closed", "subscribers_count"}

func (cdb *CommunityDB) CreateCommunity(ctx context.Context, community *model.Community, adminId string) error {
	return cdb.sess.TxContext(ctx, func(sess db.Session) error {
		if _, err := sess.SQL().
			InsertInto("community").
			Columns(communityColumns...).
			Values(community.Id, community.CreatedAt, community.Name, community.Description, community.IsClosed, 1).
			ExecContext(ctx); err != nil {
			return appDb.TranslateErr(err)
		}
		_, err := sess.SQL().
			InsertInto("community_role").
			Columns("user_id", "community_id", "role").
			Values(adminId, community.Id, model.RoleAdministrator).
			ExecContext(ctx)
		return appDb.TranslateErr(err)
	}, txOpts)
}

func (cdb *CommunityDB) GetCommunities(ctx context.Context) ([]*model.Community, error) {
	communities := []*model.Community{}
	return communities, cdb.sess.SQL().
		Select(columnsOf(communityColumns)...).
		From("community").
		OrderBy("name").
		IteratorContext(ctx).
		All(&communities)
}

func (cdb *CommunityDB) GetCommunityById(ctx context.Context, id string) (*model.Community, error) {
	var community model.Community
	if err := cdb.sess.SQL().
		Select(columnsOf(communityColumns)...).
		From("community").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&community); err != nil {
		return nil, ignoreNoRows(err)
	}
	return &community, nil
}
