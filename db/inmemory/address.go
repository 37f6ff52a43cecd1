package inmemory

import (
	"context"
	"sort"

	"github.com/navbryce/next-blog-be/model"
)

// LoadAddresses appends registry rows. The registry is read-only to the API.
func (s *Store) LoadAddresses(addresses []*model.Address, houses []*model.HousesAddress, hierarchy []*model.HierarchyAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addresses = append(s.addresses, addresses...)
	s.houses = append(s.houses, houses...)
	s.hierarchy = append(s.hierarchy, hierarchy...)
}

func (s *Store) GetHierarchyChildren(ctx context.Context, parentObjectId int64) ([]*model.HierarchyAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	children := []*model.HierarchyAddress{}
	for _, node := range s.hierarchy {
		if node.IsActive && node.ParentObjectId == parentObjectId {
			found := *node
			children = append(children, &found)
		}
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].ObjectId < children[j].ObjectId
	})
	return children, nil
}

func (s *Store) GetHierarchyByObjectId(ctx context.Context, objectId int64) (*model.HierarchyAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, node := range s.hierarchy {
		if node.IsActive && node.ObjectId == objectId {
			found := *node
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Store) latestAddress(match func(*model.Address) bool) *model.Address {
	var latest *model.Address
	for _, address := range s.addresses {
		if match(address) && (latest == nil || address.StartDate.After(latest.StartDate)) {
			latest = address
		}
	}
	if latest == nil {
		return nil
	}
	found := *latest
	return &found
}

func (s *Store) latestHouse(match func(*model.HousesAddress) bool) *model.HousesAddress {
	var latest *model.HousesAddress
	for _, house := range s.houses {
		if match(house) && (latest == nil || house.StartDate.After(latest.StartDate)) {
			latest = house
		}
	}
	if latest == nil {
		return nil
	}
	found := *latest
	return &found
}

func (s *Store) GetAddressByObjectId(ctx context.Context, objectId int64) (*model.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latestAddress(func(a *model.Address) bool { return a.ObjectId == objectId }), nil
}

func (s *Store) GetAddressByGuid(ctx context.Context, guid string) (*model.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latestAddress(func(a *model.Address) bool { return a.ObjectGuid == guid }), nil
}

func (s *Store) GetHouseByObjectId(ctx context.Context, objectId int64) (*model.HousesAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latestHouse(func(h *model.HousesAddress) bool { return h.ObjectId == objectId }), nil
}

func (s *Store) GetHouseByGuid(ctx context.Context, guid string) (*model.HousesAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latestHouse(func(h *model.HousesAddress) bool { return h.ObjectGuid == guid }), nil
}
