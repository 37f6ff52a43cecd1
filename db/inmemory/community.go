package inmemory

import (
	"context"
	"sort"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
)

func (s *Store) CreateCommunity(ctx context.Context, community *model.Community, adminId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.communities[community.Id]; ok {
		return db.ErrDuplicateKey
	}
	stored := *community
	stored.SubscribersCount = 1
	s.communities[community.Id] = &stored
	s.roles[roleKey{adminId, community.Id}] = model.RoleAdministrator
	return nil
}

// PutRole stores a role without touching counters. Intended for seeding.
func (s *Store) PutRole(userId string, communityId string, role model.CommunityRole) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roles[roleKey{userId, communityId}] = role
}

func (s *Store) GetCommunities(ctx context.Context) ([]*model.Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	communities := make([]*model.Community, 0, len(s.communities))
	for _, community := range s.communities {
		found := *community
		communities = append(communities, &found)
	}
	sort.Slice(communities, func(i, j int) bool {
		return communities[i].Name < communities[j].Name
	})
	return communities, nil
}

func (s *Store) GetCommunityById(ctx context.Context, id string) (*model.Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	community, ok := s.communities[id]
	if !ok {
		return nil, nil
	}
	found := *community
	return &found, nil
}

func (s *Store) GetCommunityRole(ctx context.Context, userId string, communityId string) (*model.UserCommunityRole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role, ok := s.roles[roleKey{userId, communityId}]
	if !ok {
		return nil, nil
	}
	return &model.UserCommunityRole{UserId: userId, CommunityId: communityId, Role: role}, nil
}

func (s *Store) GetRolesForUser(ctx context.Context, userId string) ([]*model.UserCommunityRole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roles := []*model.UserCommunityRole{}
	for key, role := range s.roles {
		if key.userId == userId {
			roles = append(roles, &model.UserCommunityRole{UserId: userId, CommunityId: key.communityId, Role: role})
		}
	}
	sort.Slice(roles, func(i, j int) bool {
		return roles[i].CommunityId < roles[j].CommunityId
	})
	return roles, nil
}

func (s *Store) GetCommunityAdminIds(ctx context.Context, communityId string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := []string{}
	for key, role := range s.roles {
		if key.communityId == communityId && role == model.RoleAdministrator {
			ids = append(ids, key.userId)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) AddSubscriber(ctx context.Context, userId string, communityId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	community, ok := s.communities[communityId]
	if !ok {
		return db.ErrNotFound
	}
	key := roleKey{userId, communityId}
	if _, exists := s.roles[key]; exists {
		return db.ErrDuplicateKey
	}
	s.roles[key] = model.RoleSubscriber
	community.SubscribersCount++
	return nil
}

func (s *Store) RemoveSubscriber(ctx context.Context, userId string, communityId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := roleKey{userId, communityId}
	if role, exists := s.roles[key]; !exists || role != model.RoleSubscriber {
		return db.ErrNotFound
	}
	delete(s.roles, key)
	if community, ok := s.communities[communityId]; ok && community.SubscribersCount > 0 {
		community.SubscribersCount--
	}
	return nil
}
