package planetscale

import (
	"context"

	"github.com/navbryce/next-blog-be/db/dao"
	"github.com/navbryce/next-blog-be/model"
	"github.com/upper/db/v4"
)

type AddressDB struct {
	sess db.Session
}

func getAddressDB(sess db.Session) *AddressDB {
	return &AddressDB{sess}
}

type flattenedHierarchy struct {
	Id             int64         `db:"id"`
	ObjectId       int64         `db:"object_id"`
	ParentObjectId dao.NullInt64 `db:"parent_obj_id"`
	Path           string        `db:"path"`
	IsActive       bool          `db:"is_active"`
}

func (fh *flattenedHierarchy) toModel() *model.HierarchyAddress {
	parent := fh.ParentObjectId.AsInt()
	if parent < 0 {
		parent = 0
	}
	return &model.HierarchyAddress{
		Id:             fh.Id,
		ObjectId:       fh.ObjectId,
		ParentObjectId: parent,
		Path:           fh.Path,
		IsActive:       fh.IsActive,
	}
}

var hierarchyColumns = []interface{}{"id", "object_id", "parent_obj_id", "path", "is_active"}

func (adb *AddressDB) GetHierarchyChildren(ctx context.Context, parentObjectId int64) ([]*model.HierarchyAddress, error) {
	var rows []flattenedHierarchy
	if err := adb.sess.SQL().
		Select(hierarchyColumns...).
		From("address_hierarchy").
		Where("is_active = TRUE AND (parent_obj_id = ? OR (? = 0 AND parent_obj_id IS NULL))", parentObjectId, parentObjectId).
		OrderBy("object_id").
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	nodes := make([]*model.HierarchyAddress, len(rows))
	for i := range rows {
		nodes[i] = rows[i].toModel()
	}
	return nodes, nil
}

func (adb *AddressDB) GetHierarchyByObjectId(ctx context.Context, objectId int64) (*model.HierarchyAddress, error) {
	var row flattenedHierarchy
	if err := adb.sess.SQL().
		Select(hierarchyColumns...).
		From("address_hierarchy").
		Where("is_active = TRUE AND object_id = ?", objectId).
		Limit(1).
		IteratorContext(ctx).
		One(&row); err != nil {
		return nil, ignoreNoRows(err)
	}
	return row.toModel(), nil
}

var addressColumns = []interface{}{
	"id", "object_id", "object_guid", "name", "type_name", "level",
	"start_date", "end_date", "is_actual", "is_active",
}

func (adb *AddressDB) latestAddress(ctx context.Context, where string, arg interface{}) (*model.Address, error) {
	var address model.Address
	if err := adb.sess.SQL().
		Select(addressColumns...).
		From("address_object").
		Where(where, arg).
		OrderBy("start_date DESC").
		Limit(1).
		IteratorContext(ctx).
		One(&address); err != nil {
		return nil, ignoreNoRows(err)
	}
	return &address, nil
}

func (adb *AddressDB) GetAddressByObjectId(ctx context.Context, objectId int64) (*model.Address, error) {
	return adb.latestAddress(ctx, "object_id = ?", objectId)
}

func (adb *AddressDB) GetAddressByGuid(ctx context.Context, guid string) (*model.Address, error) {
	return adb.latestAddress(ctx, "object_guid = ?", guid)
}

var houseColumns = []interface{}{
	"id", "object_id", "object_guid", "house_num", "add_num1", "add_num2", "house_type",
	"start_date", "end_date", "is_actual", "is_active",
}

func (adb *AddressDB) latestHouse(ctx context.Context, where string, arg interface{}) (*model.HousesAddress, error) {
	var house model.HousesAddress
	if err := adb.sess.SQL().
		Select(houseColumns...).
		From("address_house").
		Where(where, arg).
		OrderBy("start_date DESC").
		Limit(1).
		IteratorContext(ctx).
		One(&house); err != nil {
		return nil, ignoreNoRows(err)
	}
	return &house, nil
}

func (adb *AddressDB) GetHouseByObjectId(ctx context.Context, objectId int64) (*model.HousesAddress, error) {
	return adb.latestHouse(ctx, "object_id = ?", objectId)
}

func (adb *AddressDB) GetHouseByGuid(ctx context.Context, guid string) (*model.HousesAddress, error) {
	return adb.latestHouse(ctx, "object_guid = ?", guid)
}
