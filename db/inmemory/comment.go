package inmemory

import (
	"context"
	"sort"
	"time"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
)

func (s *Store) CreateComment(ctx context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[comment.PostId]
	if !ok {
		return db.ErrNotFound
	}
	var parent *model.Comment
	if comment.ParentId != nil {
		if parent, ok = s.comments[*comment.ParentId]; !ok {
			return db.ErrNotFound
		}
	}
	if _, exists := s.comments[comment.Id]; exists {
		return db.ErrDuplicateKey
	}

	stored := *comment
	s.comments[comment.Id] = &stored
	if parent != nil {
		parent.SubComments++
	}
	post.CommentsCount++
	return nil
}

func (s *Store) GetCommentById(ctx context.Context, id string) (*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	found := *comment
	return &found, nil
}

func (s *Store) commentsWhere(keep func(*model.Comment) bool) []*model.Comment {
	comments := []*model.Comment{}
	for _, comment := range s.comments {
		if keep(comment) {
			found := *comment
			comments = append(comments, &found)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].Id < comments[j].Id
	})
	return comments
}

func (s *Store) GetRootComments(ctx context.Context, postId string) ([]*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.commentsWhere(func(c *model.Comment) bool {
		return c.PostId == postId && c.ParentId == nil
	}), nil
}

func (s *Store) GetCommentsByPostId(ctx context.Context, postId string) ([]*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.commentsWhere(func(c *model.Comment) bool {
		return c.PostId == postId
	}), nil
}

func (s *Store) UpdateCommentContent(ctx context.Context, id string, content string, modifiedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return db.ErrNotFound
	}
	comment.Content = content
	comment.ModifiedDate = &modifiedAt
	return nil
}

func (s *Store) SoftDeleteComment(ctx context.Context, id string, deletedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return db.ErrNotFound
	}
	comment.Status = model.CommentDeleted
	comment.Content = ""
	comment.DeleteDate = &deletedAt
	comment.ModifiedDate = &deletedAt
	return nil
}

func (s *Store) DeleteComment(ctx context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.comments[comment.Id]
	if !ok || stored.SubComments > 0 {
		return db.ErrNotFound
	}
	delete(s.comments, comment.Id)
	if stored.ParentId != nil {
		if parent, ok := s.comments[*stored.ParentId]; ok && parent.SubComments > 0 {
			parent.SubComments--
		}
	}
	if post, ok := s.posts[stored.PostId]; ok && post.CommentsCount > 0 {
		post.CommentsCount--
	}
	return nil
}
