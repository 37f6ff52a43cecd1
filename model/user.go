package model

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func ParseGender(val string) (Gender, bool) {
	switch Gender(val) {
	case GenderMale, GenderFemale:
		return Gender(val), true
	}
	return "", false
}

// User is the stored account. PasswordHash never leaves the server.
type User struct {
	Id           string     `json:"id"`
	CreatedAt    time.Time  `json:"createTime"`
	FullName     string     `json:"fullName"`
	BirthDate    *time.Time `json:"birthDate"`
	Gender       Gender     `json:"gender"`
	Email        string     `json:"email"`
	PhoneNumber  *string    `json:"phoneNumber"`
	PasswordHash string     `json:"-"`
}

type UserProfile struct {
	Id          string     `json:"id"`
	CreatedAt   time.Time  `json:"createTime"`
	FullName    string     `json:"fullName"`
	BirthDate   *time.Time `json:"birthDate"`
	Gender      Gender     `json:"gender"`
	Email       string     `json:"email"`
	PhoneNumber *string    `json:"phoneNumber"`
}

func (u *User) Profile() *UserProfile {
	return &UserProfile{
		Id:          u.Id,
		CreatedAt:   u.CreatedAt,
		FullName:    u.FullName,
		BirthDate:   u.BirthDate,
		Gender:      u.Gender,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

// Author is a user that has published at least one post
type Author struct {
	FullName  string     `json:"fullName"`
	BirthDate *time.Time `json:"birthDate"`
	Gender    Gender     `json:"gender"`
	Posts     int        `json:"posts"`
	Likes     int        `json:"likes"`
	CreatedAt time.Time  `json:"created"`
}

type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshToken struct {
	Id        string    `db:"id" json:"-"`
	Token     string    `db:"token" json:"-"`
	UserId    string    `db:"user_id" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"-"`
	Revoked   bool      `db:"revoked" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

func (rt *RefreshToken) IsExpired(now time.Time) bool {
	return !rt.ExpiresAt.After(now)
}

func (rt *RefreshToken) IsLive(now time.Time) bool {
	return !rt.Revoked && !rt.IsExpired(now)
}
