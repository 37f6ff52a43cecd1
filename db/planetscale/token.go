package planetscale

import (
	"context"
	"time"

	appDb "github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/model"
	"github.com/upper/db/v4"
)

type TokenDB struct {
	sess db.Session
}

func getTokenDB(sess db.Session) *TokenDB {
	return &TokenDB{sess}
}

var refreshTokenColumns = []string{"id", "token", "user_id", "expires_at", "revoked", "created_at"}

func (tdb *TokenDB) getTokenWhere(ctx context.Context, where string, arg interface{}) (*model.RefreshToken, error) {
	var token model.RefreshToken
	if err := tdb.sess.SQL().
		Select(columnsOf(refreshTokenColumns)...).
		From("refresh_token").
		Where(where, arg).
		OrderBy("created_at DESC").
		Limit(1).
		IteratorContext(ctx).
		One(&token); err != nil {
		return nil, ignoreNoRows(err)
	}
	return &token, nil
}

func (tdb *TokenDB) GetRefreshToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	return tdb.getTokenWhere(ctx, "token = ?", token)
}

func (tdb *TokenDB) GetRefreshTokenForUser(ctx context.Context, userId string) (*model.RefreshToken, error) {
	return tdb.getTokenWhere(ctx, "user_id = ?", userId)
}

func (tdb *TokenDB) ReplaceRefreshToken(ctx context.Context, token *model.RefreshToken) error {
	return tdb.sess.TxContext(ctx, func(sess db.Session) error {
		if _, err := sess.SQL().
			DeleteFrom("refresh_token").
			Where("user_id = ?", token.UserId).
			ExecContext(ctx); err != nil {
			return err
		}
		_, err := sess.SQL().
			InsertInto("refresh_token").
			Columns(refreshTokenColumns...).
			Values(token.Id, token.Token, token.UserId, token.ExpiresAt, token.Revoked, token.CreatedAt).
			ExecContext(ctx)
		return appDb.TranslateErr(err)
	}, txOpts)
}

func (tdb *TokenDB) RevokeRefreshToken(ctx context.Context, token string) error {
	if _, err := tdb.sess.SQL().
		Update("refresh_token").
		Set("revoked", true).
		Where("token = ?", token).
		ExecContext(ctx); err != nil {
		return err
	}
	// mysql reports zero affected rows for an already revoked token
	stored, err := tdb.GetRefreshToken(ctx, token)
	if err != nil {
		return err
	}
	if stored == nil {
		return appDb.ErrNotFound
	}
	return nil
}

func (tdb *TokenDB) DeleteStaleRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := tdb.sess.SQL().
		DeleteFrom("refresh_token").
		Where("expires_at <= ? OR revoked = TRUE", now).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
