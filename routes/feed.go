package routes

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/app"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
)

// parseFeedQuery reads the filter, sort and pagination parameters shared by the post listings
func parseFeedQuery(c *gin.Context) (*app.FeedQuery, *util.HTTPError) {
	query := &app.FeedQuery{
		Author: c.Query("author"),
	}
	for _, tag := range c.QueryArray("tags") {
		if tag = strings.TrimSpace(tag); tag != "" {
			query.TagIds = append(query.TagIds, tag)
		}
	}

	var err error
	if query.MinReadingTime, err = util.ParseOptionalInt(c.Query("min")); err != nil {
		return nil, util.ErrValidationFailed.Withf("min must be an integer")
	}
	if query.MaxReadingTime, err = util.ParseOptionalInt(c.Query("max")); err != nil {
		return nil, util.ErrValidationFailed.Withf("max must be an integer")
	}
	sorting, ok := model.ParsePostSorting(c.Query("sorting"))
	if !ok {
		return nil, util.ErrValidationFailed.Withf("unknown sorting %q", c.Query("sorting"))
	}
	query.Sorting = sorting
	if raw := c.Query("onlyMyCommunities"); raw != "" {
		if query.OnlyMyCommunities, err = strconv.ParseBool(raw); err != nil {
			return nil, util.ErrValidationFailed.Withf("onlyMyCommunities must be a boolean")
		}
	}
	if query.Page, err = util.ParseIntOr(c.Query("page"), app.DefaultPage); err != nil {
		return nil, util.ErrInvalidPagination.Withf("page must be an integer")
	}
	if query.Size, err = util.ParseIntOr(c.Query("size"), app.DefaultPageSize); err != nil {
		return nil, util.ErrInvalidPagination.Withf("size must be an integer")
	}
	return query, nil
}
