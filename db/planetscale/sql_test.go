package planetscale

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	appDb "github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/db/dao"
	"github.com/navbryce/next-blog-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/upper/db/v4"
)

func TestBuildPostConditions(t *testing.T) {
	lo, hi := 5, 10
	conds := buildPostConditions(&appDb.PostsListQuery{
		AuthorIds:        []string{"a"},
		WithoutCommunity: true,
		TagIds:           []string{"t1", "t2"},
		MinReadingTime:   &lo,
		MaxReadingTime:   &hi,
	})

	assert.Equal(t, []string{
		"p.author_id IN ?",
		"p.community_id IS NULL",
		"p.id IN (SELECT pt.post_id FROM post_tag AS pt WHERE pt.tag_id IN ?)",
		"p.reading_time >= ?",
		"p.reading_time <= ?",
	}, conds.clauses)
	assert.Equal(t, []interface{}{[]string{"a"}, []string{"t1", "t2"}, 5, 10}, conds.args)
}

func TestBuildPostConditionsEmpty(t *testing.T) {
	conds := buildPostConditions(&appDb.PostsListQuery{TagIds: []string{}})

	assert.Empty(t, conds.clauses)
	assert.Empty(t, conds.args)
}

func TestPostOrder(t *testing.T) {
	assert.Equal(t, []interface{}{"p.created_at DESC", "p.id"}, postOrder(""))
	assert.Equal(t, []interface{}{"p.created_at ASC", "p.id"}, postOrder(model.SortCreateAsc))
	assert.Equal(t, []interface{}{"p.likes DESC", "p.id"}, postOrder(model.SortLikeDesc))
	assert.Equal(t, []interface{}{"p.likes ASC", "p.id"}, postOrder(model.SortLikeAsc))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% ada\_l`, escapeLike("100% Ada_L"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
}

func TestIgnoreNoRows(t *testing.T) {
	assert.NoError(t, ignoreNoRows(db.ErrNoMoreRows))
	boom := errors.New("boom")
	assert.Equal(t, boom, ignoreNoRows(boom))
}

func TestRequireAffected(t *testing.T) {
	assert.NoError(t, requireAffected(sqlmock.NewResult(0, 1), nil))
	assert.ErrorIs(t, requireAffected(sqlmock.NewResult(0, 0), nil), appDb.ErrNotFound)

	boom := errors.New("boom")
	assert.Equal(t, boom, requireAffected(nil, boom))
	assert.Equal(t, boom, requireAffected(sqlmock.NewErrorResult(boom), nil))
}

func TestFlattenedPostToModel(t *testing.T) {
	community := "c1"
	row := &flattenedPost{
		Id:          "p1",
		Title:       "Hello",
		AuthorId:    "u1",
		AuthorName:  "Ada",
		CommunityId: dao.NullStringFrom(&community),
		Likes:       3,
		HasLike:     true,
	}

	post := row.toModel()

	assert.Equal(t, "Ada", post.Author)
	assert.Nil(t, post.Image)
	assert.Equal(t, "c1", *post.CommunityId)
	assert.Equal(t, 3, post.Likes)
	assert.True(t, post.HasLike)
	assert.NotNil(t, post.Tags)
}

func TestFlattenedCommentToModel(t *testing.T) {
	deleted := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	row := &flattenedComment{
		Id:         "c2",
		Status:     model.CommentDeleted,
		DeleteDate: dao.NullTimeFrom(&deleted),
		ParentId:   dao.NullStringFrom(nil),
	}

	comment := row.toModel()

	assert.True(t, comment.IsDeleted())
	assert.Equal(t, deleted, *comment.DeleteDate)
	assert.Nil(t, comment.ModifiedDate)
	assert.Nil(t, comment.ParentId)
}

func TestFlattenedHierarchyRootParent(t *testing.T) {
	row := &flattenedHierarchy{ObjectId: 7, Path: "7"}
	assert.Equal(t, int64(0), row.toModel().ParentObjectId)

	row.ParentObjectId = dao.NullInt64{NullInt64: sql.NullInt64{Int64: 3, Valid: true}}
	assert.Equal(t, int64(3), row.toModel().ParentObjectId)
}

func TestColumnsOf(t *testing.T) {
	assert.Equal(t, []interface{}{"id", "token"}, columnsOf([]string{"id", "token"}))
	assert.Len(t, columnsOf(commentColumns), len(commentColumns))
	assert.Equal(t, "id", columnsOf(userColumns)[0])
}
