package controllers

import (
	"testing"
	"time"

	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	regionGuid = "8c4b4f4a-3a55-4b59-bb14-3b2f0f1a0001"
	cityGuid   = "8c4b4f4a-3a55-4b59-bb14-3b2f0f1a0002"
	streetGuid = "8c4b4f4a-3a55-4b59-bb14-3b2f0f1a0003"
	houseGuid  = "8c4b4f4a-3a55-4b59-bb14-3b2f0f1a0004"
)

func seedAddresses(env *testEnv) {
	old := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	env.store.LoadAddresses(
		[]*model.Address{
			{Id: 1, ObjectId: 100, ObjectGuid: regionGuid, Name: "Томская", TypeName: "обл", Level: 1, StartDate: recent, IsActive: true},
			{Id: 2, ObjectId: 200, ObjectGuid: cityGuid, Name: "Томск", TypeName: "г", Level: 5, StartDate: recent, IsActive: true},
			{Id: 3, ObjectId: 300, ObjectGuid: streetGuid, Name: "Старая", TypeName: "ул", Level: 8, StartDate: old, IsActive: true},
			{Id: 4, ObjectId: 300, ObjectGuid: streetGuid, Name: "Ленина", TypeName: "ул", Level: 8, StartDate: recent, IsActive: true},
		},
		[]*model.HousesAddress{
			{Id: 5, ObjectId: 400, ObjectGuid: houseGuid, HouseNum: "12", HouseType: 2, StartDate: recent, IsActive: true},
		},
		[]*model.HierarchyAddress{
			{Id: 1, ObjectId: 100, ParentObjectId: 0, Path: "100", IsActive: true},
			{Id: 2, ObjectId: 200, ParentObjectId: 100, Path: "100.200", IsActive: true},
			{Id: 3, ObjectId: 300, ParentObjectId: 200, Path: "100.200.300", IsActive: true},
			{Id: 4, ObjectId: 400, ParentObjectId: 300, Path: "100.200.300.400", IsActive: true},
			{Id: 5, ObjectId: 999, ParentObjectId: 300, Path: "100.200.300.999", IsActive: true},
		},
	)
}

func TestAddressSearch(t *testing.T) {
	env := newTestEnv(t)
	seedAddresses(env)

	roots, httpErr := env.addresses.Search(env.ctx, 0, "")
	require.Nil(t, httpErr)
	require.Len(t, roots, 1)
	assert.Equal(t, "обл Томская", roots[0].Text)
	assert.Equal(t, model.LevelRegion, roots[0].ObjectLevel)
	assert.Equal(t, "Регион", roots[0].ObjectLevelText)

	houses, httpErr := env.addresses.Search(env.ctx, 300, "")
	require.Nil(t, httpErr)
	require.Len(t, houses, 1, "unresolved object ids are dropped")
	assert.Equal(t, "12", houses[0].Text)
	assert.Equal(t, model.LevelBuilding, houses[0].ObjectLevel)

	streets, httpErr := env.addresses.Search(env.ctx, 200, "ЛЕН")
	require.Nil(t, httpErr)
	require.Len(t, streets, 1)
	assert.Equal(t, "ул Ленина", streets[0].Text, "the latest record by start date wins")

	streets, httpErr = env.addresses.Search(env.ctx, 200, "Старая")
	require.Nil(t, httpErr)
	assert.Empty(t, streets)
}

func TestAddressChain(t *testing.T) {
	env := newTestEnv(t)
	seedAddresses(env)

	chain, httpErr := env.addresses.Chain(env.ctx, houseGuid)
	require.Nil(t, httpErr)
	require.Len(t, chain, 4)
	assert.Equal(t, int64(100), chain[0].ObjectId)
	assert.Equal(t, "г Томск", chain[1].Text)
	assert.Equal(t, model.LevelCity, chain[1].ObjectLevel)
	assert.Equal(t, model.LevelElementOfRoadNetwork, chain[2].ObjectLevel)
	assert.Equal(t, "12", chain[3].Text)

	chain, httpErr = env.addresses.Chain(env.ctx, regionGuid)
	require.Nil(t, httpErr)
	require.Len(t, chain, 1)
	assert.Equal(t, regionGuid, chain[0].ObjectGuid)

	_, httpErr = env.addresses.Chain(env.ctx, util.NewId())
	require.NotNil(t, httpErr)
	assert.ErrorIs(t, httpErr, util.ErrAddressElementNotFound)
}

func TestCreatePostWithAddress(t *testing.T) {
	env := newTestEnv(t)
	seedAddresses(env)
	authorId := env.register(t, "Ada", "ada@example.com")

	id := env.createPost(t, authorId, &CreatePostReq{AddressId: strPtr(houseGuid)})
	post, httpErr := env.posts.GetPost(env.ctx, "", id)
	require.Nil(t, httpErr)
	require.NotNil(t, post.AddressId)
	assert.Equal(t, houseGuid, *post.AddressId)
}
