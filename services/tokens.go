package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/navbryce/next-blog-be/util"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	Audience      string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type Claims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService signs access tokens and keeps one refresh token per user
type TokenService struct {
	cfg    TokenConfig
	tokens db.TokenDatabase
	now    func() time.Time
}

func NewTokenService(cfg TokenConfig, tokens db.TokenDatabase) *TokenService {
	return &TokenService{
		cfg:    cfg,
		tokens: tokens,
		now:    time.Now,
	}
}

func (ts *TokenService) sign(userId string, tokenType string, ttl time.Duration, secret string) (string, time.Time, error) {
	now := ts.now().UTC()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userId,
			Issuer:    ts.cfg.Issuer,
			Audience:  jwt.ClaimStrings{ts.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (ts *TokenService) parse(raw string, tokenType string, secret string) (*Claims, *util.HTTPError) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ts.cfg.Issuer),
		jwt.WithAudience(ts.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ts.now),
	)
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, util.ErrExpiredToken
		}
		return nil, util.ErrInvalidToken
	}
	if claims.Type != tokenType || claims.Subject == "" {
		return nil, util.ErrInvalidToken
	}
	return claims, nil
}

func (ts *TokenService) IssueAccessToken(userId string) (string, *util.HTTPError) {
	token, _, err := ts.sign(userId, TokenTypeAccess, ts.cfg.AccessTTL, ts.cfg.AccessSecret)
	if err != nil {
		return "", util.BuildInternalHTTPErr(err)
	}
	return token, nil
}

// ParseAccessToken returns the user id carried by a valid access token
func (ts *TokenService) ParseAccessToken(raw string) (string, *util.HTTPError) {
	claims, httpErr := ts.parse(raw, TokenTypeAccess, ts.cfg.AccessSecret)
	if httpErr != nil {
		return "", httpErr
	}
	return claims.Subject, nil
}

// ParseRefreshToken checks the signature and claims only. Use Validate for the stored state.
func (ts *TokenService) ParseRefreshToken(raw string) (string, *util.HTTPError) {
	claims, httpErr := ts.parse(raw, TokenTypeRefresh, ts.cfg.RefreshSecret)
	if httpErr != nil {
		return "", httpErr
	}
	return claims.Subject, nil
}

// IssueOrReuseRefreshToken hands back the user's live refresh token, or replaces it with a new one
func (ts *TokenService) IssueOrReuseRefreshToken(ctx context.Context, userId string) (string, *util.HTTPError) {
	stored, err := ts.tokens.GetRefreshTokenForUser(ctx, userId)
	if err != nil {
		return "", util.BuildDbHTTPErr(err)
	}
	if stored != nil && stored.IsLive(ts.now()) {
		return stored.Token, nil
	}

	signed, expiresAt, err := ts.sign(userId, TokenTypeRefresh, ts.cfg.RefreshTTL, ts.cfg.RefreshSecret)
	if err != nil {
		return "", util.BuildInternalHTTPErr(err)
	}
	if err := ts.tokens.ReplaceRefreshToken(ctx, &model.RefreshToken{
		Id:        uuid.NewString(),
		Token:     signed,
		UserId:    userId,
		ExpiresAt: expiresAt,
		CreatedAt: ts.now().UTC(),
	}); err != nil {
		return "", util.BuildDbHTTPErr(err)
	}
	return signed, nil
}

func (ts *TokenService) Validate(ctx context.Context, token string) (*model.RefreshToken, *util.HTTPError) {
	stored, err := ts.tokens.GetRefreshToken(ctx, token)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if stored == nil {
		return nil, util.ErrTokenNotFound
	}
	if stored.Revoked {
		return nil, util.ErrRevokedToken
	}
	if stored.IsExpired(ts.now()) {
		return nil, util.ErrExpiredToken
	}
	return stored, nil
}

func (ts *TokenService) Revoke(ctx context.Context, token string) *util.HTTPError {
	if err := ts.tokens.RevokeRefreshToken(ctx, token); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return util.ErrTokenNotFound
		}
		return util.BuildDbHTTPErr(err)
	}
	return nil
}

// RevokeForUser revokes whatever refresh token the user currently holds
func (ts *TokenService) RevokeForUser(ctx context.Context, userId string) *util.HTTPError {
	stored, err := ts.tokens.GetRefreshTokenForUser(ctx, userId)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if stored == nil {
		return util.ErrTokenNotFound
	}
	return ts.Revoke(ctx, stored.Token)
}

func (ts *TokenService) HasActiveSession(ctx context.Context, userId string) (bool, *util.HTTPError) {
	stored, err := ts.tokens.GetRefreshTokenForUser(ctx, userId)
	if err != nil {
		return false, util.BuildDbHTTPErr(err)
	}
	return stored != nil && stored.IsLive(ts.now()), nil
}
