package model

import (
	"time"
)

type PostSorting string

const (
	SortCreateDesc PostSorting = "CreateDesc"
	SortCreateAsc  PostSorting = "CreateAsc"
	SortLikeDesc   PostSorting = "LikeDesc"
	SortLikeAsc    PostSorting = "LikeAsc"
)

// ParsePostSorting defaults to SortCreateDesc on an empty value
func ParsePostSorting(val string) (PostSorting, bool) {
	if val == "" {
		return SortCreateDesc, true
	}
	switch PostSorting(val) {
	case SortCreateDesc, SortCreateAsc, SortLikeDesc, SortLikeAsc:
		return PostSorting(val), true
	}
	return "", false
}

type Tag struct {
	Id        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createTime"`
	Name      string    `db:"name" json:"name"`
}

type Post struct {
	Id            string    `json:"id"`
	CreatedAt     time.Time `json:"createTime"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ReadingTime   int       `json:"readingTime"`
	Image         *string   `json:"image"`
	AuthorId      string    `json:"authorId"`
	Author        string    `json:"author"`
	CommunityId   *string   `json:"communityId"`
	CommunityName *string   `json:"communityName"`
	AddressId     *string   `json:"addressId"`
	Likes         int       `json:"likes"`
	HasLike       bool      `json:"hasLike"`
	CommentsCount int       `json:"commentsCount"`
	Tags          []*Tag    `json:"tags"`
}

func (p *Post) TagIds() []string {
	ids := make([]string, len(p.Tags))
	for i, tag := range p.Tags {
		ids[i] = tag.Id
	}
	return ids
}

// PostWithComments carries the top level comments of a post
type PostWithComments struct {
	*Post
	Comments []*Comment `json:"comments"`
}

type PageInfo struct {
	Size    int `json:"size"`
	Count   int `json:"count"`
	Current int `json:"current"`
}

type PostPage struct {
	Posts      []*Post  `json:"posts"`
	Pagination PageInfo `json:"pagination"`
}
