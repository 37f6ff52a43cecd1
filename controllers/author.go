package controllers

import (
	"context"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
)

type AuthorController struct {
	db db.UserDatabase
}

func NewAuthorController(database db.UserDatabase) *AuthorController {
	return &AuthorController{db: database}
}

// List returns every user with at least one post
func (ac *AuthorController) List(ctx context.Context) ([]*model.Author, *util.HTTPError) {
	authors, err := ac.db.GetAuthors(ctx)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return authors, nil
}
