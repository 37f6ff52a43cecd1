package planetscale

import (
	"context"
	"time"

	appDb "github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/db/dao"
	"github.com/navbryce/next-blog-be/model"
	"github.com/upper/db/v4"
)

type CommentDB struct {
	sess db.Session
}

func getCommentDB(sess db.Session) *CommentDB {
	return &CommentDB{sess}
}

type flattenedComment struct {
	Id           string              `db:"id"`
	CreatedAt    time.Time           `db:"created_at"`
	ModifiedDate dao.NullTime        `db:"modified_date"`
	DeleteDate   dao.NullTime        `db:"delete_date"`
	Status       model.CommentStatus `db:"status"`
	Content      string              `db:"content"`
	AuthorId     string              `db:"author_id"`
	AuthorName   string              `db:"author_name"`
	PostId       string              `db:"post_id"`
	ParentId     dao.NullString      `db:"parent_id"`
	SubComments  int                 `db:"sub_comments"`
}

func (fc *flattenedComment) toModel() *model.Comment {
	return &model.Comment{
		Id:           fc.Id,
		CreatedAt:    fc.CreatedAt,
		ModifiedDate: fc.ModifiedDate.Ptr(),
		DeleteDate:   fc.DeleteDate.Ptr(),
		Status:       fc.Status,
		Content:      fc.Content,
		AuthorId:     fc.AuthorId,
		Author:       fc.AuthorName,
		PostId:       fc.PostId,
		ParentId:     fc.ParentId.Ptr(),
		SubComments:  fc.SubComments,
	}
}

var commentColumns = []string{
	"id",
	"created_at",
	"modified_date",
	"delete_date",
	"status",
	"content",
	"author_id",
	"author_name",
	"post_id",
	"parent_id",
	"sub_comments",
}

func (cdb *CommentDB) CreateComment(ctx context.Context, comment *model.Comment) error {
	return cdb.sess.TxContext(ctx, func(sess db.Session) error {
		if _, err := sess.SQL().
			InsertInto("comment").
			Columns(commentColumns...).
			Values(
				comment.Id,
				comment.CreatedAt,
				dao.NullTimeFrom(comment.ModifiedDate),
				dao.NullTimeFrom(comment.DeleteDate),
				comment.Status,
				comment.Content,
				comment.AuthorId,
				comment.Author,
				comment.PostId,
				dao.NullStringFrom(comment.ParentId),
				comment.SubComments,
			).
			ExecContext(ctx); err != nil {
			return appDb.TranslateErr(err)
		}
		if comment.ParentId != nil {
			if err := requireAffected(sess.SQL().
				Update("comment").
				Set("sub_comments = sub_comments + ?", 1).
				Where("id = ?", *comment.ParentId).
				ExecContext(ctx)); err != nil {
				return err
			}
		}
		return requireAffected(sess.SQL().
			Update("post").
			Set("comments_count = comments_count + ?", 1).
			Where("id = ?", comment.PostId).
			ExecContext(ctx))
	}, txOpts)
}

func (cdb *CommentDB) GetCommentById(ctx context.Context, id string) (*model.Comment, error) {
	var flattened flattenedComment
	if err := cdb.sess.SQL().
		Select(columnsOf(commentColumns)...).
		From("comment").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&flattened); err != nil {
		return nil, ignoreNoRows(err)
	}
	return flattened.toModel(), nil
}

func (cdb *CommentDB) getCommentsWhere(ctx context.Context, where string, args ...interface{}) ([]*model.Comment, error) {
	var flattenedComments []flattenedComment
	if err := cdb.sess.SQL().
		Select(columnsOf(commentColumns)...).
		From("comment").
		Where(append([]interface{}{where}, args...)...).
		OrderBy("created_at", "id").
		IteratorContext(ctx).
		All(&flattenedComments); err != nil {
		return nil, err
	}
	comments := make([]*model.Comment, len(flattenedComments))
	for i := range flattenedComments {
		comments[i] = flattenedComments[i].toModel()
	}
	return comments, nil
}

func (cdb *CommentDB) GetRootComments(ctx context.Context, postId string) ([]*model.Comment, error) {
	return cdb.getCommentsWhere(ctx, "post_id = ? AND parent_id IS NULL", postId)
}

func (cdb *CommentDB) GetCommentsByPostId(ctx context.Context, postId string) ([]*model.Comment, error) {
	return cdb.getCommentsWhere(ctx, "post_id = ?", postId)
}

func (cdb *CommentDB) UpdateCommentContent(ctx context.Context, id string, content string, modifiedAt time.Time) error {
	_, err := cdb.sess.SQL().
		Update("comment").
		Set(map[string]interface{}{
			"content":       content,
			"modified_date": modifiedAt,
		}).
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}

func (cdb *CommentDB) SoftDeleteComment(ctx context.Context, id string, deletedAt time.Time) error {
	_, err := cdb.sess.SQL().
		Update("comment").
		Set(map[string]interface{}{
			"status":        model.CommentDeleted,
			"content":       "",
			"delete_date":   deletedAt,
			"modified_date": deletedAt,
		}).
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}

func (cdb *CommentDB) DeleteComment(ctx context.Context, comment *model.Comment) error {
	return cdb.sess.TxContext(ctx, func(sess db.Session) error {
		if err := requireAffected(sess.SQL().
			DeleteFrom("comment").
			Where("id = ? AND sub_comments = ?", comment.Id, 0).
			ExecContext(ctx)); err != nil {
			return err
		}
		if comment.ParentId != nil {
			if _, err := sess.SQL().
				Update("comment").
				Set("sub_comments = GREATEST(sub_comments - ?, 0)", 1).
				Where("id = ?", *comment.ParentId).
				ExecContext(ctx); err != nil {
				return err
			}
		}
		_, err := sess.SQL().
			Update("post").
			Set("comments_count = GREATEST(comments_count - ?, 0)", 1).
			Where("id = ?", comment.PostId).
			ExecContext(ctx)
		return err
	}, txOpts)
}
