package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/services"
	"github.com/navbryce/next-blog-be/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	db       db.UserDatabase
	tokens   *services.TokenService
	hashCost int
	now      func() time.Time
}

func NewAuthController(database db.UserDatabase, tokens *services.TokenService) *AuthController {
	return &AuthController{
		db:       database,
		tokens:   tokens,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}
}

type RegisterReq struct {
	FullName    string  `json:"fullName"`
	Password    string  `json:"password"`
	Email       string  `json:"email"`
	BirthDate   *string `json:"birthDate"`
	Gender      string  `json:"gender"`
	PhoneNumber *string `json:"phoneNumber"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshRes struct {
	Token string `json:"token"`
}

func (ac *AuthController) Register(ctx context.Context, req *RegisterReq) (*model.TokenPair, *util.HTTPError) {
	email := strings.TrimSpace(req.Email)
	if !util.IsValidFullName(req.FullName) {
		return nil, util.ErrValidationFailed.Withf("full name may only contain latin letters and spaces")
	}
	if !util.IsValidEmail(email) {
		return nil, util.ErrValidationFailed.Withf("email is malformed")
	}
	if !util.IsValidPassword(req.Password) {
		return nil, util.ErrValidationFailed.Withf("password must have at least %v characters", util.MinPasswordLength)
	}
	phone, httpErr := validatePhone(req.PhoneNumber)
	if httpErr != nil {
		return nil, httpErr
	}
	gender, ok := model.ParseGender(req.Gender)
	if !ok {
		return nil, util.ErrIncorrectGender
	}
	birthDate, httpErr := parseBirthDate(req.BirthDate, ac.now())
	if httpErr != nil {
		return nil, httpErr
	}

	existing, err := ac.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if existing != nil {
		return nil, util.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), ac.hashCost)
	if err != nil {
		return nil, util.BuildInternalHTTPErr(err)
	}
	user := &model.User{
		Id:           util.NewId(),
		CreatedAt:    ac.now().UTC(),
		FullName:     strings.TrimSpace(req.FullName),
		BirthDate:    birthDate,
		Gender:       gender,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
	}
	if err := ac.db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return nil, util.ErrDuplicateUser
		}
		return nil, util.BuildDbHTTPErr(err)
	}
	log.Info().Str("userId", user.Id).Msg("user registered")

	return ac.issueTokens(ctx, user.Id)
}

// Login answers a wrong email and a wrong password identically
func (ac *AuthController) Login(ctx context.Context, req *LoginReq) (*model.TokenPair, *util.HTTPError) {
	user, err := ac.db.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if user == nil {
		return nil, util.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return ac.issueTokens(ctx, user.Id)
}

func (ac *AuthController) Logout(ctx context.Context, userId string) (*MessageRes, *util.HTTPError) {
	if httpErr := ac.tokens.RevokeForUser(ctx, userId); httpErr != nil {
		return nil, httpErr
	}
	return &MessageRes{Message: "Logged out"}, nil
}

// Refresh trades a live refresh token for a new access token. The refresh token itself is kept.
func (ac *AuthController) Refresh(ctx context.Context, req *RefreshReq) (*RefreshRes, *util.HTTPError) {
	userId, httpErr := ac.tokens.ParseRefreshToken(req.RefreshToken)
	if httpErr != nil {
		return nil, httpErr
	}
	stored, httpErr := ac.tokens.Validate(ctx, req.RefreshToken)
	if httpErr != nil {
		if errors.Is(httpErr, util.ErrTokenNotFound) || errors.Is(httpErr, util.ErrRevokedToken) {
			return nil, util.ErrInvalidToken
		}
		return nil, httpErr
	}
	if stored.UserId != userId {
		return nil, util.ErrInvalidToken
	}
	access, httpErr := ac.tokens.IssueAccessToken(userId)
	if httpErr != nil {
		return nil, httpErr
	}
	return &RefreshRes{Token: access}, nil
}

func (ac *AuthController) issueTokens(ctx context.Context, userId string) (*model.TokenPair, *util.HTTPError) {
	access, httpErr := ac.tokens.IssueAccessToken(userId)
	if httpErr != nil {
		return nil, httpErr
	}
	refresh, httpErr := ac.tokens.IssueOrReuseRefreshToken(ctx, userId)
	if httpErr != nil {
		return nil, httpErr
	}
	return &model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func validatePhone(phone *string) (*string, *util.HTTPError) {
	if phone == nil || util.IsBlank(*phone) {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*phone)
	if !util.IsValidPhone(trimmed) {
		return nil, util.ErrValidationFailed.Withf("phone number must look like +7XXXXXXXXXX or 8XXXXXXXXXX")
	}
	return &trimmed, nil
}

func parseBirthDate(val *string, now time.Time) (*time.Time, *util.HTTPError) {
	if val == nil || util.IsBlank(*val) {
		return nil, nil
	}
	birthDate, err := util.ParseTime(strings.TrimSpace(*val))
	if err != nil {
		return nil, util.ErrValidationFailed.Withf("birth date is malformed")
	}
	if birthDate.After(now) {
		return nil, util.ErrValidationFailed.Withf("birth date must not be in the future")
	}
	birthDate = birthDate.UTC()
	return &birthDate, nil
}
