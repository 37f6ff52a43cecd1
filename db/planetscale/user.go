package planetscale

import (
	"context"
	"time"

	appDb "github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/db/dao"
	"github.com/navbryce/next-blog-be/model"
	"github.com/upper/db/v4"
)

type UserDB struct {
	sess db.Session
}

func getUserDB(sess db.Session) *UserDB {
	return &UserDB{sess}
}

type userRow struct {
	Id           string         `db:"id"`
	CreatedAt    time.Time      `db:"created_at"`
	FullName     string         `db:"full_name"`
	BirthDate    dao.NullTime   `db:"birth_date"`
	Gender       model.Gender   `db:"gender"`
	Email        string         `db:"email"`
	PhoneNumber  dao.NullString `db:"phone_number"`
	PasswordHash string         `db:"password_hash"`
}

func (row *userRow) toModel() *model.User {
	return &model.User{
		Id:           row.Id,
		CreatedAt:    row.CreatedAt,
		FullName:     row.FullName,
		BirthDate:    row.BirthDate.Ptr(),
		Gender:       row.Gender,
		Email:        row.Email,
		PhoneNumber:  row.PhoneNumber.Ptr(),
		PasswordHash: row.PasswordHash,
	}
}

var userColumns = []string{
	"id",
	"created_at",
	"full_name",
	"birth_date",
	"gender",
	"email",
	"phone_number",
	"password_hash",
}

func (udb *UserDB) CreateUser(ctx context.Context, user *model.User) error {
	_, err := udb.sess.SQL().
		InsertInto("person").
		Columns(userColumns...).
		Values(
			user.Id,
			user.CreatedAt,
			user.FullName,
			dao.NullTimeFrom(user.BirthDate),
			user.Gender,
			user.Email,
			dao.NullStringFrom(user.PhoneNumber),
			user.PasswordHash,
		).
		ExecContext(ctx)
	return appDb.TranslateErr(err)
}

func (udb *UserDB) getUserWhere(ctx context.Context, where string, arg interface{}) (*model.User, error) {
	var row userRow
	if err := udb.sess.SQL().
		Select(columnsOf(userColumns)...).
		From("person").
		Where(where, arg).
		IteratorContext(ctx).
		One(&row); err != nil {
		return nil, ignoreNoRows(err)
	}
	return row.toModel(), nil
}

func (udb *UserDB) GetUserById(ctx context.Context, id string) (*model.User, error) {
	return udb.getUserWhere(ctx, "id = ?", id)
}

func (udb *UserDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return udb.getUserWhere(ctx, "email = ?", email)
}

func (udb *UserDB) GetUsersByIds(ctx context.Context, ids []string) ([]*model.User, error) {
	users := []*model.User{}
	if len(ids) == 0 {
		return users, nil
	}
	var rows []userRow
	if err := udb.sess.SQL().
		Select(columnsOf(userColumns)...).
		From("person").
		Where("id IN ?", ids).
		OrderBy("full_name").
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	for i := range rows {
		users = append(users, rows[i].toModel())
	}
	return users, nil
}

func (udb *UserDB) UpdateUser(ctx context.Context, id string, req *appDb.UpdateUser) error {
	if req.IsEmpty() {
		return nil
	}
	changes := map[string]interface{}{}
	if req.FullName != nil {
		changes["full_name"] = *req.FullName
	}
	if req.Email != nil {
		changes["email"] = *req.Email
	}
	if req.BirthDate != nil {
		changes["birth_date"] = *req.BirthDate
	}
	if req.Gender != nil {
		changes["gender"] = *req.Gender
	}
	if req.PhoneNumber != nil {
		changes["phone_number"] = *req.PhoneNumber
	}
	_, err := udb.sess.SQL().
		Update("person").
		Set(changes).
		Where("id = ?", id).
		ExecContext(ctx)
	return appDb.TranslateErr(err)
}

func (udb *UserDB) FindUserIdsByName(ctx context.Context, name string) ([]string, error) {
	var rows []struct {
		Id string `db:"id"`
	}
	if err := udb.sess.SQL().
		Select("id").
		From("person").
		Where("LOWER(full_name) LIKE ?", "%"+escapeLike(name)+"%").
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.Id
	}
	return ids, nil
}

type authorRow struct {
	FullName  string       `db:"full_name"`
	BirthDate dao.NullTime `db:"birth_date"`
	Gender    model.Gender `db:"gender"`
	CreatedAt time.Time    `db:"created_at"`
	Posts     int          `db:"posts"`
	Likes     int          `db:"likes"`
}

func (udb *UserDB) GetAuthors(ctx context.Context) ([]*model.Author, error) {
	var rows []authorRow
	if err := udb.sess.SQL().
		Select(
			"u.full_name",
			"u.birth_date",
			"u.gender",
			"u.created_at",
			db.Raw("COUNT(p.id) AS posts"),
			db.Raw("COALESCE(SUM(p.likes), 0) AS likes"),
		).
		From("person AS u").
		Join("post AS p").On("p.author_id = u.id").
		GroupBy("u.id", "u.full_name", "u.birth_date", "u.gender", "u.created_at").
		OrderBy("u.full_name").
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	authors := make([]*model.Author, len(rows))
	for i, row := range rows {
		authors[i] = &model.Author{
			FullName:  row.FullName,
			BirthDate: row.BirthDate.Ptr(),
			Gender:    row.Gender,
			Posts:     row.Posts,
			Likes:     row.Likes,
			CreatedAt: row.CreatedAt,
		}
	}
	return authors, nil
}
