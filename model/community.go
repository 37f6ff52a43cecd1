package model

import "time"

type CommunityRole string

const (
	RoleAdministrator CommunityRole = "Administrator"
	RoleSubscriber    CommunityRole = "Subscriber"
)

type Community struct {
	Id               string    `db:"id" json:"id"`
	CreatedAt        time.Time `db:"created_at" json:"createTime"`
	Name             string    `db:"name" json:"name"`
	Description      string    `db:"description" json:"description"`
	IsClosed         bool      `db:"is_closed" json:"isClosed"`
	SubscribersCount int       `db:"subscribers_count" json:"subscribersCount"`
}

type CommunityWithAdmins struct {
	*Community
	Administrators []*UserProfile `json:"administrators"`
}

// UserCommunityRole is unique per (UserId, CommunityId)
type UserCommunityRole struct {
	UserId      string        `db:"user_id" json:"userId"`
	CommunityId string        `db:"community_id" json:"communityId"`
	Role        CommunityRole `db:"role" json:"role"`
}
