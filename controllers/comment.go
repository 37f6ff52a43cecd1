package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
	"github.com/rs/zerolog/log"
)

type CommentController struct {
	db  db.Database
	now func() time.Time
}

func NewCommentController(database db.Database) *CommentController {
	return &CommentController{db: database, now: time.Now}
}

type CreateCommentReq struct {
	Content  string  `json:"content"`
	ParentId *string `json:"parentId"`
}

type EditCommentReq struct {
	Content string `json:"content"`
}

// getActiveComment treats a soft deleted comment as missing
func (cc *CommentController) getActiveComment(ctx context.Context, commentId string) (*model.Comment, *util.HTTPError) {
	comment, err := cc.db.GetCommentById(ctx, commentId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if comment == nil || comment.IsDeleted() {
		return nil, util.ErrCommentNotFound
	}
	return comment, nil
}

func (cc *CommentController) getPost(ctx context.Context, postId string) (*model.Post, *util.HTTPError) {
	post, err := cc.db.GetPostById(ctx, postId, nil)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, util.ErrPostNotFound
	}
	return post, nil
}

// GetTree returns the whole reply forest below the comment rather than only its
// direct children. Deleted replies keep their place with blank content so the
// nesting below them stays intact.
func (cc *CommentController) GetTree(ctx context.Context, viewerId string, commentId string) ([]*model.CommentTree, *util.HTTPError) {
	root, httpErr := cc.getActiveComment(ctx, commentId)
	if httpErr != nil {
		return nil, httpErr
	}
	post, httpErr := cc.getPost(ctx, root.PostId)
	if httpErr != nil {
		return nil, httpErr
	}
	if httpErr := checkCommunityAccess(ctx, cc.db, viewerId, post.CommunityId); httpErr != nil {
		return nil, httpErr
	}
	comments, err := cc.db.GetCommentsByPostId(ctx, root.PostId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return model.BuildCommentForest(root.Id, comments), nil
}

func (cc *CommentController) Create(ctx context.Context, userId string, postId string, req *CreateCommentReq) (string, *util.HTTPError) {
	content := util.XSSSanitize(req.Content)
	if content == "" {
		return "", util.ErrEmptyContent
	}
	post, httpErr := cc.getPost(ctx, postId)
	if httpErr != nil {
		return "", httpErr
	}
	if httpErr := checkCommunityAccess(ctx, cc.db, userId, post.CommunityId); httpErr != nil {
		return "", httpErr
	}
	if req.ParentId != nil {
		parent, httpErr := cc.getActiveComment(ctx, *req.ParentId)
		if httpErr != nil {
			return "", httpErr
		}
		if parent.PostId != post.Id {
			return "", util.ErrCommentNotFound.Withf("parent comment belongs to another post")
		}
	}
	author, httpErr := getUser(ctx, cc.db, userId)
	if httpErr != nil {
		return "", httpErr
	}

	comment := &model.Comment{
		Id:        util.NewId(),
		CreatedAt: cc.now().UTC(),
		Status:    model.CommentActive,
		Content:   content,
		AuthorId:  author.Id,
		Author:    author.FullName,
		PostId:    post.Id,
		ParentId:  req.ParentId,
	}
	if err := cc.db.CreateComment(ctx, comment); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", util.ErrCommentNotFound
		}
		return "", util.BuildDbHTTPErr(err)
	}
	return comment.Id, nil
}

// CreateReply answers an existing comment on the post it belongs to
func (cc *CommentController) CreateReply(ctx context.Context, userId string, parentId string, content string) (string, *util.HTTPError) {
	parent, httpErr := cc.getActiveComment(ctx, parentId)
	if httpErr != nil {
		return "", httpErr
	}
	return cc.Create(ctx, userId, parent.PostId, &CreateCommentReq{
		Content:  content,
		ParentId: &parent.Id,
	})
}

func (cc *CommentController) Edit(ctx context.Context, userId string, commentId string, req *EditCommentReq) *util.HTTPError {
	content := util.XSSSanitize(req.Content)
	if content == "" {
		return util.ErrEmptyContent
	}
	comment, httpErr := cc.getActiveComment(ctx, commentId)
	if httpErr != nil {
		return httpErr
	}
	if !comment.IsAuthor(userId) {
		return util.ErrNotCommentAuthor
	}
	if err := cc.db.UpdateCommentContent(ctx, commentId, content, cc.now().UTC()); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return util.ErrCommentNotFound
		}
		return util.BuildDbHTTPErr(err)
	}
	return nil
}

// Delete blanks a comment that has replies and removes a leaf outright
func (cc *CommentController) Delete(ctx context.Context, userId string, commentId string) *util.HTTPError {
	comment, httpErr := cc.getActiveComment(ctx, commentId)
	if httpErr != nil {
		return httpErr
	}
	if !comment.IsAuthor(userId) {
		return util.ErrNotCommentAuthor
	}

	soft := comment.SubComments > 0
	var err error
	if !soft {
		err = cc.db.DeleteComment(ctx, comment)
		if errors.Is(err, db.ErrNotFound) {
			// a reply may have landed after the read; blank the comment instead
			comment, httpErr = cc.getActiveComment(ctx, commentId)
			if httpErr != nil {
				return httpErr
			}
			soft = true
		}
	}
	if soft {
		err = cc.db.SoftDeleteComment(ctx, commentId, cc.now().UTC())
	}
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return util.ErrCommentNotFound
		}
		return util.BuildDbHTTPErr(err)
	}
	log.Info().Str("commentId", comment.Id).Bool("soft", soft).Msg("comment deleted")
	return nil
}
