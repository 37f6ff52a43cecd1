package inmemory

import (
	"sort"
	"sync"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
)

type likeKey struct {
	postId string
	userId string
}

type roleKey struct {
	userId      string
	communityId string
}

// Store keeps every table in maps behind one lock. Values handed out are copies.
type Store struct {
	mu sync.RWMutex

	users         map[string]*model.User
	refreshTokens map[string]*model.RefreshToken // keyed by token
	posts         map[string]*model.Post
	postTags      map[string][]string
	likes         map[likeKey]bool
	comments      map[string]*model.Comment
	communities   map[string]*model.Community
	roles         map[roleKey]model.CommunityRole
	tags          map[string]*model.Tag

	addresses []*model.Address
	houses    []*model.HousesAddress
	hierarchy []*model.HierarchyAddress
}

var _ db.Database = (*Store)(nil)

func New() *Store {
	return &Store{
		users:         make(map[string]*model.User),
		refreshTokens: make(map[string]*model.RefreshToken),
		posts:         make(map[string]*model.Post),
		postTags:      make(map[string][]string),
		likes:         make(map[likeKey]bool),
		comments:      make(map[string]*model.Comment),
		communities:   make(map[string]*model.Community),
		roles:         make(map[roleKey]model.CommunityRole),
		tags:          make(map[string]*model.Tag),
	}
}

func (s *Store) Close() error {
	return nil
}

func copyStrings(vals []string) []string {
	if vals == nil {
		return nil
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
