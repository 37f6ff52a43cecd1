package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePostSorting(t *testing.T) {
	sorting, ok := ParsePostSorting("")
	assert.True(t, ok)
	assert.Equal(t, SortCreateDesc, sorting)

	sorting, ok = ParsePostSorting("LikeAsc")
	assert.True(t, ok)
	assert.Equal(t, SortLikeAsc, sorting)

	_, ok = ParsePostSorting("likeasc")
	assert.False(t, ok)
}

func TestParseGender(t *testing.T) {
	gender, ok := ParseGender("Female")
	assert.True(t, ok)
	assert.Equal(t, GenderFemale, gender)

	_, ok = ParseGender("female")
	assert.False(t, ok)
}

func TestRefreshTokenIsLive(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&RefreshToken{ExpiresAt: now.Add(time.Second)}).IsLive(now))
	assert.False(t, (&RefreshToken{ExpiresAt: now}).IsLive(now))
	assert.False(t, (&RefreshToken{ExpiresAt: now.Add(time.Hour), Revoked: true}).IsLive(now))
}

func TestUserProfileHidesPassword(t *testing.T) {
	user := &User{Id: "u1", Email: "ada@example.com", PasswordHash: "hash"}

	profile := user.Profile()

	assert.Equal(t, "u1", profile.Id)
	assert.Equal(t, "ada@example.com", profile.Email)
}

func TestPostTagIds(t *testing.T) {
	post := &Post{Tags: []*Tag{{Id: "t1"}, {Id: "t2"}}}

	assert.Equal(t, []string{"t1", "t2"}, post.TagIds())
}

func TestObjectLevelFromCode(t *testing.T) {
	level, ok := ObjectLevelFromCode(1)
	assert.True(t, ok)
	assert.Equal(t, LevelRegion, level)
	assert.Equal(t, "Регион", level.Text())

	level, ok = ObjectLevelFromCode(17)
	assert.True(t, ok)
	assert.Equal(t, LevelCarPlace, level)

	_, ok = ObjectLevelFromCode(0)
	assert.False(t, ok)
	_, ok = ObjectLevelFromCode(18)
	assert.False(t, ok)
}

func TestAncestorIds(t *testing.T) {
	h := &HierarchyAddress{Path: "1.22.x.333."}

	assert.Equal(t, []int64{1, 22, 333}, h.AncestorIds())
	assert.Empty(t, (&HierarchyAddress{}).AncestorIds())
}

func TestAddressElements(t *testing.T) {
	street := (&Address{ObjectId: 7, ObjectGuid: "g", Name: "Ленина", TypeName: "ул", Level: 8}).Element()
	assert.Equal(t, "ул Ленина", street.Text)
	assert.Equal(t, LevelElementOfRoadNetwork, street.ObjectLevel)

	house := (&HousesAddress{ObjectId: 8, HouseNum: "12"}).Element()
	assert.Equal(t, "12", house.Text)
	assert.Equal(t, LevelBuilding, house.ObjectLevel)
	assert.Equal(t, "Здание (сооружение)", house.ObjectLevelText)

	assert.Equal(t, "Дом", HouseTypeText(3))
	assert.Empty(t, HouseTypeText(99))
}
