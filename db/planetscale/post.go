package planetscale

import (
	"context"
	"time"

	appDb "github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/db/dao"
	"github.com/navbryce/next-blog-be/model"
	"github.com/upper/db/v4"
)

type PostDB struct {
	sess db.Session
}

func getPostDB(sess db.Session) *PostDB {
	return &PostDB{sess}
}

func (pdb *PostDB) CreatePost(ctx context.Context, post *appDb.CreatePost) error {
	return pdb.sess.TxContext(ctx, func(sess db.Session) error {
		if _, err := sess.SQL().
			InsertInto("post").
			Columns(
				"id", "created_at", "title", "description", "reading_time", "image",
				"author_id", "author_name", "community_id", "community_name", "address_id",
			).
			Values(
				post.Id,
				post.CreatedAt,
				post.Title,
				post.Description,
				post.ReadingTime,
				dao.NullStringFrom(post.Image),
				post.AuthorId,
				post.Author,
				dao.NullStringFrom(post.CommunityId),
				dao.NullStringFrom(post.CommunityName),
				dao.NullStringFrom(post.AddressId),
			).
			ExecContext(ctx); err != nil {
			return appDb.TranslateErr(err)
		}
		if len(post.TagIds) == 0 {
			return nil
		}

		batchInserter := sess.SQL().
			InsertInto("post_tag").
			Columns("post_id", "tag_id").
			Batch(len(post.TagIds))
		for _, tagId := range post.TagIds {
			batchInserter.Values(post.Id, tagId)
		}
		batchInserter.Done()
		return batchInserter.Wait()
	}, txOpts)
}

type flattenedPost struct {
	Id            string         `db:"id"`
	CreatedAt     time.Time      `db:"created_at"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	ReadingTime   int            `db:"reading_time"`
	Image         dao.NullString `db:"image"`
	AuthorId      string         `db:"author_id"`
	AuthorName    string         `db:"author_name"`
	CommunityId   dao.NullString `db:"community_id"`
	CommunityName dao.NullString `db:"community_name"`
	AddressId     dao.NullString `db:"address_id"`
	Likes         int            `db:"likes"`
	CommentsCount int            `db:"comments_count"`
	HasLike       bool           `db:"has_like"`
}

func (fp *flattenedPost) toModel() *model.Post {
	return &model.Post{
		Id:            fp.Id,
		CreatedAt:     fp.CreatedAt,
		Title:         fp.Title,
		Description:   fp.Description,
		ReadingTime:   fp.ReadingTime,
		Image:         fp.Image.Ptr(),
		AuthorId:      fp.AuthorId,
		Author:        fp.AuthorName,
		CommunityId:   fp.CommunityId.Ptr(),
		CommunityName: fp.CommunityName.Ptr(),
		AddressId:     fp.AddressId.Ptr(),
		Likes:         fp.Likes,
		HasLike:       fp.HasLike,
		CommentsCount: fp.CommentsCount,
		Tags:          []*model.Tag{},
	}
}

var postColumns = append([]interface{}{
	"p.id",
	"p.created_at",
	"p.title",
	"p.description",
	"p.reading_time",
	"p.image",
	"p.author_id",
	"p.author_name",
	"p.community_id",
	"p.community_name",
	"p.address_id",
	"p.likes",
	"p.comments_count",
}, convertDbRawToInterface(db.Raw("l.user_id IS NOT NULL AS has_like"))...)

func likesOf(opts *appDb.PostQueryOpts) string {
	if opts == nil {
		return ""
	}
	return opts.LikesOf
}

func (pdb *PostDB) selectPosts(opts *appDb.PostQueryOpts) db.Selector {
	return pdb.sess.SQL().
		Select(postColumns...).
		From("post AS p").
		LeftJoin("post_like AS l").On("l.post_id = p.id AND l.user_id = ?", likesOf(opts))
}

func (pdb *PostDB) GetPostById(ctx context.Context, id string, opts *appDb.PostQueryOpts) (*model.Post, error) {
	var flattened flattenedPost
	if err := pdb.selectPosts(opts).
		Where("p.id = ?", id).
		IteratorContext(ctx).
		One(&flattened); err != nil {
		return nil, ignoreNoRows(err)
	}
	posts := []*model.Post{flattened.toModel()}
	if err := pdb.attachTags(ctx, posts); err != nil {
		return nil, err
	}
	return posts[0], nil
}

func buildPostConditions(query *appDb.PostsListQuery) *conditions {
	conds := &conditions{}
	if query.AuthorIds != nil {
		conds.add("p.author_id IN ?", query.AuthorIds)
	}
	if query.WithoutCommunity {
		conds.add("p.community_id IS NULL")
	}
	if query.CommunityIds != nil {
		conds.add("p.community_id IN ?", query.CommunityIds)
	}
	if len(query.TagIds) > 0 {
		conds.add("p.id IN (SELECT pt.post_id FROM post_tag AS pt WHERE pt.tag_id IN ?)", query.TagIds)
	}
	if query.MinReadingTime != nil {
		conds.add("p.reading_time >= ?", *query.MinReadingTime)
	}
	if query.MaxReadingTime != nil {
		conds.add("p.reading_time <= ?", *query.MaxReadingTime)
	}
	return conds
}

func postOrder(sorting model.PostSorting) []interface{} {
	switch sorting {
	case model.SortCreateAsc:
		return []interface{}{"p.created_at ASC", "p.id"}
	case model.SortLikeDesc:
		return []interface{}{"p.likes DESC", "p.id"}
	case model.SortLikeAsc:
		return []interface{}{"p.likes ASC", "p.id"}
	default:
		return []interface{}{"p.created_at DESC", "p.id"}
	}
}

func (pdb *PostDB) GetPosts(ctx context.Context, query *appDb.PostsListQuery) ([]*model.Post, error) {
	if query.MatchesNothing() {
		return []*model.Post{}, nil
	}
	selector := buildPostConditions(query).
		apply(pdb.selectPosts(query.PostQueryOpts)).
		OrderBy(postOrder(query.Sort)...)
	if query.Limit > 0 {
		selector = selector.Limit(query.Limit)
	}
	if query.Offset > 0 {
		selector = selector.Offset(query.Offset)
	}

	var flattenedPosts []flattenedPost
	if err := selector.IteratorContext(ctx).All(&flattenedPosts); err != nil {
		return nil, err
	}
	posts := make([]*model.Post, len(flattenedPosts))
	for i := range flattenedPosts {
		posts[i] = flattenedPosts[i].toModel()
	}
	if err := pdb.attachTags(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (pdb *PostDB) CountPosts(ctx context.Context, query *appDb.PostsListQuery) (int, error) {
	if query.MatchesNothing() {
		return 0, nil
	}
	var count struct {
		Total int `db:"total"`
	}
	if err := buildPostConditions(query).
		apply(pdb.sess.SQL().Select(db.Raw("COUNT(*) AS total")).From("post AS p")).
		IteratorContext(ctx).
		One(&count); err != nil {
		return 0, err
	}
	return count.Total, nil
}

type postTagRow struct {
	PostId    string    `db:"post_id"`
	Id        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Name      string    `db:"name"`
}

func (pdb *PostDB) attachTags(ctx context.Context, posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}
	byId := make(map[string]*model.Post, len(posts))
	ids := make([]string, len(posts))
	for i, post := range posts {
		byId[post.Id] = post
		ids[i] = post.Id
	}

	var rows []postTagRow
	if err := pdb.sess.SQL().
		Select("pt.post_id", "t.id", "t.created_at", "t.name").
		From("post_tag AS pt").
		Join("tag AS t").On("t.id = pt.tag_id").
		Where("pt.post_id IN ?", ids).
		OrderBy("t.name").
		IteratorContext(ctx).
		All(&rows); err != nil {
		return err
	}
	for _, row := range rows {
		post := byId[row.PostId]
		post.Tags = append(post.Tags, &model.Tag{Id: row.Id, CreatedAt: row.CreatedAt, Name: row.Name})
	}
	return nil
}

func (pdb *PostDB) AddLike(ctx context.Context, postId string, userId string) error {
	return pdb.sess.TxContext(ctx, func(sess db.Session) error {
		if _, err := sess.SQL().
			InsertInto("post_like").
			Columns("post_id", "user_id", "created_at").
			Values(postId, userId, time.Now().UTC()).
			ExecContext(ctx); err != nil {
			return appDb.TranslateErr(err)
		}
		return requireAffected(sess.SQL().
			Update("post").
			Set("likes = likes + ?", 1).
			Where("id = ?", postId).
			ExecContext(ctx))
	}, txOpts)
}

func (pdb *PostDB) RemoveLike(ctx context.Context, postId string, userId string) error {
	return pdb.sess.TxContext(ctx, func(sess db.Session) error {
		if err := requireAffected(sess.SQL().
			DeleteFrom("post_like").
			Where("post_id = ? AND user_id = ?", postId, userId).
			ExecContext(ctx)); err != nil {
			return err
		}
		_, err := sess.SQL().
			Update("post").
			Set("likes = GREATEST(likes - ?, 0)", 1).
			Where("id = ?", postId).
			ExecContext(ctx)
		return err
	}, txOpts)
}

func (pdb *PostDB) HasLike(ctx context.Context, postId string, userId string) (bool, error) {
	count, err := pdb.sess.WithContext(ctx).
		Collection("post_like").
		Find("post_id = ? AND user_id = ?", postId, userId).
		Count()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
