package inmemory

import (
	"context"
	"sort"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
)

func (s *Store) CreatePost(ctx context.Context, req *db.CreatePost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[req.Id]; ok {
		return db.ErrDuplicateKey
	}
	s.posts[req.Id] = &model.Post{
		Id:            req.Id,
		CreatedAt:     req.CreatedAt,
		Title:         req.Title,
		Description:   req.Description,
		ReadingTime:   req.ReadingTime,
		Image:         req.Image,
		AuthorId:      req.AuthorId,
		Author:        req.Author,
		CommunityId:   req.CommunityId,
		CommunityName: req.CommunityName,
		AddressId:     req.AddressId,
	}
	s.postTags[req.Id] = copyStrings(req.TagIds)
	return nil
}

// buildPost must be called with the lock held
func (s *Store) buildPost(post *model.Post, opts *db.PostQueryOpts) *model.Post {
	built := *post
	built.Tags = []*model.Tag{}
	for _, tagId := range s.postTags[post.Id] {
		if tag, ok := s.tags[tagId]; ok {
			found := *tag
			built.Tags = append(built.Tags, &found)
		}
	}
	sort.Slice(built.Tags, func(i, j int) bool {
		return built.Tags[i].Name < built.Tags[j].Name
	})
	if opts != nil && opts.LikesOf != "" {
		built.HasLike = s.likes[likeKey{post.Id, opts.LikesOf}]
	}
	return &built
}

func (s *Store) GetPostById(ctx context.Context, id string, opts *db.PostQueryOpts) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	return s.buildPost(post, opts), nil
}

func containsString(vals []string, val string) bool {
	for _, v := range vals {
		if v == val {
			return true
		}
	}
	return false
}

func (s *Store) matches(post *model.Post, query *db.PostsListQuery) bool {
	if query.AuthorIds != nil && !containsString(query.AuthorIds, post.AuthorId) {
		return false
	}
	if query.WithoutCommunity && post.CommunityId != nil {
		return false
	}
	if query.CommunityIds != nil && (post.CommunityId == nil || !containsString(query.CommunityIds, *post.CommunityId)) {
		return false
	}
	if len(query.TagIds) > 0 {
		anyTag := false
		for _, tagId := range s.postTags[post.Id] {
			if containsString(query.TagIds, tagId) {
				anyTag = true
				break
			}
		}
		if !anyTag {
			return false
		}
	}
	if query.MinReadingTime != nil && post.ReadingTime < *query.MinReadingTime {
		return false
	}
	if query.MaxReadingTime != nil && post.ReadingTime > *query.MaxReadingTime {
		return false
	}
	return true
}

func (s *Store) filterPosts(query *db.PostsListQuery) []*model.Post {
	if query.MatchesNothing() {
		return []*model.Post{}
	}
	matched := []*model.Post{}
	for _, post := range s.posts {
		if s.matches(post, query) {
			matched = append(matched, post)
		}
	}
	return matched
}

func sortPosts(posts []*model.Post, sorting model.PostSorting) {
	sort.Slice(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		switch sorting {
		case model.SortCreateAsc:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		case model.SortLikeDesc:
			if a.Likes != b.Likes {
				return a.Likes > b.Likes
			}
		case model.SortLikeAsc:
			if a.Likes != b.Likes {
				return a.Likes < b.Likes
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.Id < b.Id
	})
}

func (s *Store) GetPosts(ctx context.Context, query *db.PostsListQuery) ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.filterPosts(query)
	sortPosts(matched, query.Sort)

	start := query.Offset
	if start >= len(matched) {
		return []*model.Post{}, nil
	}
	end := len(matched)
	if query.Limit > 0 && start+query.Limit < end {
		end = start + query.Limit
	}
	page := make([]*model.Post, 0, end-start)
	for _, post := range matched[start:end] {
		page = append(page, s.buildPost(post, query.PostQueryOpts))
	}
	return page, nil
}

func (s *Store) CountPosts(ctx context.Context, query *db.PostsListQuery) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.filterPosts(query)), nil
}

func (s *Store) AddLike(ctx context.Context, postId string, userId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postId]
	if !ok {
		return db.ErrNotFound
	}
	key := likeKey{postId, userId}
	if s.likes[key] {
		return db.ErrDuplicateKey
	}
	s.likes[key] = true
	post.Likes++
	return nil
}

func (s *Store) RemoveLike(ctx context.Context, postId string, userId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{postId, userId}
	if !s.likes[key] {
		return db.ErrNotFound
	}
	delete(s.likes, key)
	if post, ok := s.posts[postId]; ok && post.Likes > 0 {
		post.Likes--
	}
	return nil
}

func (s *Store) HasLike(ctx context.Context, postId string, userId string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.likes[likeKey{postId, userId}], nil
}
