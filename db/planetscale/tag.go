package planetscale

import (
	"context"

	appDb "github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/upper/db/v4"
)

type TagDB struct {
	sess db.Session
}

func getTagDB(sess db.Session) *TagDB {
	return &TagDB{sess}
}

func (tdb *TagDB) GetTags(ctx context.Context) ([]*model.Tag, error) {
	tags := []*model.Tag{}
	return tags, tdb.sess.SQL().
		Select("id", "created_at", "name").
		From("tag").
		OrderBy("name").
		IteratorContext(ctx).
		All(&tags)
}

func (tdb *TagDB) GetTagsByIds(ctx context.Context, ids []string) ([]*model.Tag, error) {
	tags := []*model.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}
	return tags, tdb.sess.SQL().
		Select("id", "created_at", "name").
		From("tag").
		Where("id IN ?", ids).
		IteratorContext(ctx).
		All(&tags)
}

func (tdb *TagDB) CreateTag(ctx context.Context, tag *model.Tag) error {
	_, err := tdb.sess.SQL().
		InsertInto("tag").
		Columns("id", "created_at", "name").
		Values(tag.Id, tag.CreatedAt, tag.Name).
		ExecContext(ctx)
	return appDb.TranslateErr(err)
}
