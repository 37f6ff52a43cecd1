package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
)

type TagController struct {
	db  db.TagDatabase
	now func() time.Time
}

func NewTagController(database db.TagDatabase) *TagController {
	return &TagController{db: database, now: time.Now}
}

type CreateTagReq struct {
	Name string `json:"name"`
}

func (tc *TagController) List(ctx context.Context) ([]*model.Tag, *util.HTTPError) {
	tags, err := tc.db.GetTags(ctx)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return tags, nil
}

func (tc *TagController) Create(ctx context.Context, req *CreateTagReq) (*model.Tag, *util.HTTPError) {
	name := util.XSSSanitize(req.Name)
	if name == "" {
		return nil, util.ErrValidationFailed.Withf("tag name must not be empty")
	}
	tag := &model.Tag{
		Id:        util.NewId(),
		CreatedAt: tc.now().UTC(),
		Name:      name,
	}
	if err := tc.db.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return nil, util.ErrDuplicateTag
		}
		return nil, util.BuildDbHTTPErr(err)
	}
	return tag, nil
}
