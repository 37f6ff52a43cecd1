package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
)

type UserController struct {
	db  db.UserDatabase
	now func() time.Time
}

func NewUserController(database db.UserDatabase) *UserController {
	return &UserController{db: database, now: time.Now}
}

// UpdateProfileReq leaves a field untouched when it is absent or blank
type UpdateProfileReq struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"`
	BirthDate   *string `json:"birthDate"`
	Gender      *string `json:"gender"`
	PhoneNumber *string `json:"phoneNumber"`
}

func (uc *UserController) GetProfile(ctx context.Context, userId string) (*model.UserProfile, *util.HTTPError) {
	user, httpErr := getUser(ctx, uc.db, userId)
	if httpErr != nil {
		return nil, httpErr
	}
	return user.Profile(), nil
}

func (uc *UserController) UpdateProfile(ctx context.Context, userId string, req *UpdateProfileReq) (*model.UserProfile, *util.HTTPError) {
	update, httpErr := uc.buildUpdate(req)
	if httpErr != nil {
		return nil, httpErr
	}
	if _, httpErr := getUser(ctx, uc.db, userId); httpErr != nil {
		return nil, httpErr
	}

	if !update.IsEmpty() {
		if update.Email != nil {
			holder, err := uc.db.GetUserByEmail(ctx, *update.Email)
			if err != nil {
				return nil, util.BuildDbHTTPErr(err)
			}
			if holder != nil && holder.Id != userId {
				return nil, util.ErrDuplicateUser
			}
		}
		if err := uc.db.UpdateUser(ctx, userId, update); err != nil {
			switch {
			case errors.Is(err, db.ErrDuplicateKey):
				return nil, util.ErrDuplicateUser
			case errors.Is(err, db.ErrNotFound):
				return nil, util.ErrUserNotFound
			}
			return nil, util.BuildDbHTTPErr(err)
		}
	}
	return uc.GetProfile(ctx, userId)
}

func (uc *UserController) buildUpdate(req *UpdateProfileReq) (*db.UpdateUser, *util.HTTPError) {
	update := &db.UpdateUser{}
	if present(req.FullName) {
		if !util.IsValidFullName(*req.FullName) {
			return nil, util.ErrValidationFailed.Withf("full name may only contain latin letters and spaces")
		}
		fullName := strings.TrimSpace(*req.FullName)
		update.FullName = &fullName
	}
	if present(req.Email) {
		email := strings.TrimSpace(*req.Email)
		if !util.IsValidEmail(email) {
			return nil, util.ErrValidationFailed.Withf("email is malformed")
		}
		update.Email = &email
	}
	if present(req.Gender) {
		gender, ok := model.ParseGender(strings.TrimSpace(*req.Gender))
		if !ok {
			return nil, util.ErrIncorrectGender
		}
		update.Gender = &gender
	}
	phone, httpErr := validatePhone(req.PhoneNumber)
	if httpErr != nil {
		return nil, httpErr
	}
	update.PhoneNumber = phone
	birthDate, httpErr := parseBirthDate(req.BirthDate, uc.now())
	if httpErr != nil {
		return nil, httpErr
	}
	update.BirthDate = birthDate
	return update, nil
}

func present(val *string) bool {
	return val != nil && !util.IsBlank(*val)
}
