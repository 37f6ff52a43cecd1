package inmemory

import (
	"context"
	"sort"
	"strings"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
)

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return db.ErrDuplicateKey
		}
	}
	if _, ok := s.users[user.Id]; ok {
		return db.ErrDuplicateKey
	}
	stored := *user
	s.users[user.Id] = &stored
	return nil
}

func (s *Store) GetUserById(ctx context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Store) GetUsersByIds(ctx context.Context, ids []string) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []*model.User{}
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			found := *user
			users = append(users, &found)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].FullName < users[j].FullName
	})
	return users, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, req *db.UpdateUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return db.ErrNotFound
	}
	if req.Email != nil {
		for otherId, other := range s.users {
			if otherId != id && strings.EqualFold(other.Email, *req.Email) {
				return db.ErrDuplicateKey
			}
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.BirthDate != nil {
		birthDate := *req.BirthDate
		user.BirthDate = &birthDate
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.PhoneNumber != nil {
		phone := *req.PhoneNumber
		user.PhoneNumber = &phone
	}
	return nil
}

func (s *Store) FindUserIdsByName(ctx context.Context, name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(name)
	ids := []string{}
	for _, id := range sortedKeys(s.users) {
		if strings.Contains(strings.ToLower(s.users[id].FullName), needle) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *Store) GetAuthors(ctx context.Context) ([]*model.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byAuthor := make(map[string]*model.Author)
	for _, post := range s.posts {
		author, ok := byAuthor[post.AuthorId]
		if !ok {
			user, exists := s.users[post.AuthorId]
			if !exists {
				continue
			}
			author = &model.Author{
				FullName:  user.FullName,
				BirthDate: user.BirthDate,
				Gender:    user.Gender,
				CreatedAt: user.CreatedAt,
			}
			byAuthor[post.AuthorId] = author
		}
		author.Posts++
		author.Likes += post.Likes
	}

	authors := make([]*model.Author, 0, len(byAuthor))
	for _, author := range byAuthor {
		authors = append(authors, author)
	}
	sort.Slice(authors, func(i, j int) bool {
		return authors[i].FullName < authors[j].FullName
	})
	return authors, nil
}
