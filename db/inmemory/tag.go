package inmemory

import (
	"context"
	"sort"
	"strings"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
)

func (s *Store) GetTags(ctx context.Context) ([]*model.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]*model.Tag, 0, len(s.tags))
	for _, tag := range s.tags {
		found := *tag
		tags = append(tags, &found)
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

func (s *Store) GetTagsByIds(ctx context.Context, ids []string) ([]*model.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := []*model.Tag{}
	for _, id := range ids {
		if tag, ok := s.tags[id]; ok {
			found := *tag
			tags = append(tags, &found)
		}
	}
	return tags, nil
}

func (s *Store) CreateTag(ctx context.Context, tag *model.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tags {
		if strings.EqualFold(existing.Name, tag.Name) {
			return db.ErrDuplicateKey
		}
	}
	stored := *tag
	s.tags[tag.Id] = &stored
	return nil
}
