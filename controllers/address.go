package controllers

import (
	"context"
	"strings"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
)

type AddressController struct {
	db db.AddressDatabase
}

func NewAddressController(database db.AddressDatabase) *AddressController {
	return &AddressController{db: database}
}

// resolve prefers a street level record over a house. Returns nil when neither exists.
func (ac *AddressController) resolve(ctx context.Context, objectId int64) (*model.AddressElement, error) {
	address, err := ac.db.GetAddressByObjectId(ctx, objectId)
	if err != nil {
		return nil, err
	}
	if address != nil {
		return address.Element(), nil
	}
	house, err := ac.db.GetHouseByObjectId(ctx, objectId)
	if err != nil {
		return nil, err
	}
	if house != nil {
		return house.Element(), nil
	}
	return nil, nil
}

// Search lists the children of parentObjectId whose text contains query. Zero means the registry root.
func (ac *AddressController) Search(ctx context.Context, parentObjectId int64, query string) ([]*model.AddressElement, *util.HTTPError) {
	children, err := ac.db.GetHierarchyChildren(ctx, parentObjectId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	elements := []*model.AddressElement{}
	for _, child := range children {
		element, err := ac.resolve(ctx, child.ObjectId)
		if err != nil {
			return nil, util.BuildDbHTTPErr(err)
		}
		if element == nil {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(element.Text), needle) {
			continue
		}
		elements = append(elements, element)
	}
	return elements, nil
}

// Chain walks the hierarchy path of the element from the region down to the element itself
func (ac *AddressController) Chain(ctx context.Context, objectGuid string) ([]*model.AddressElement, *util.HTTPError) {
	element, httpErr := ac.findByGuid(ctx, strings.TrimSpace(objectGuid))
	if httpErr != nil {
		return nil, httpErr
	}
	node, err := ac.db.GetHierarchyByObjectId(ctx, element.ObjectId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if node == nil {
		return []*model.AddressElement{element}, nil
	}
	ancestorIds := node.AncestorIds()
	if len(ancestorIds) == 0 {
		return []*model.AddressElement{element}, nil
	}

	chain := make([]*model.AddressElement, 0, len(ancestorIds))
	for _, objectId := range ancestorIds {
		resolved, err := ac.resolve(ctx, objectId)
		if err != nil {
			return nil, util.BuildDbHTTPErr(err)
		}
		if resolved != nil {
			chain = append(chain, resolved)
		}
	}
	return chain, nil
}

func (ac *AddressController) findByGuid(ctx context.Context, guid string) (*model.AddressElement, *util.HTTPError) {
	if guid == "" {
		return nil, util.ErrAddressElementNotFound
	}
	address, err := ac.db.GetAddressByGuid(ctx, guid)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if address != nil {
		return address.Element(), nil
	}
	house, err := ac.db.GetHouseByGuid(ctx, guid)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if house == nil {
		return nil, util.ErrAddressElementNotFound
	}
	return house.Element(), nil
}
