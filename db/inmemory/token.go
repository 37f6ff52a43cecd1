package inmemory

import (
	"context"
	"time"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
)

func (s *Store) GetRefreshToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.refreshTokens[token]
	if !ok {
		return nil, nil
	}
	found := *stored
	return &found, nil
}

func (s *Store) GetRefreshTokenForUser(ctx context.Context, userId string) (*model.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *model.RefreshToken
	for _, stored := range s.refreshTokens {
		if stored.UserId != userId {
			continue
		}
		if latest == nil || stored.CreatedAt.After(latest.CreatedAt) {
			latest = stored
		}
	}
	if latest == nil {
		return nil, nil
	}
	found := *latest
	return &found, nil
}

func (s *Store) ReplaceRefreshToken(ctx context.Context, token *model.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, stored := range s.refreshTokens {
		if stored.UserId == token.UserId {
			delete(s.refreshTokens, key)
		}
	}
	stored := *token
	s.refreshTokens[token.Token] = &stored
	return nil
}

func (s *Store) RevokeRefreshToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.refreshTokens[token]
	if !ok {
		return db.ErrNotFound
	}
	stored.Revoked = true
	return nil
}

func (s *Store) DeleteStaleRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for key, stored := range s.refreshTokens {
		if !stored.IsLive(now) {
			delete(s.refreshTokens, key)
			removed++
		}
	}
	return removed, nil
}
