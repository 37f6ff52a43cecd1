package planetscale

import (
	"database/sql"

	appDb "github.com/navbryce/next-blog-be/db"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/mysql"
)

type PlanetScaleDB struct {
	*UserDB
	*TokenDB
	*PostDB
	*CommentDB
	*CommunityDB
	*SubscriptionDB
	*TagDB
	*AddressDB
	sess  db.Session
	sqlDB *sql.DB
}

var _ appDb.Database = (*PlanetScaleDB)(nil)

type Options struct {
	DSN      string
	MaxConns int
}

func GetDatabase(opts *Options) (*PlanetScaleDB, error) {
	sqlDB, err := sql.Open("mysql", opts.DSN)
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(opts.MaxConns)
	sqlDB.SetMaxOpenConns(opts.MaxConns)
	sqlDB.SetConnMaxIdleTime(0)

	sess, err := mysql.New(sqlDB)
	if err != nil {
		return nil, err
	}
	return newPlanetScaleDB(sess, sqlDB), nil
}

func newPlanetScaleDB(sess db.Session, sqlDB *sql.DB) *PlanetScaleDB {
	return &PlanetScaleDB{
		UserDB:         getUserDB(sess),
		TokenDB:        getTokenDB(sess),
		PostDB:         getPostDB(sess),
		CommentDB:      getCommentDB(sess),
		CommunityDB:    getCommunityDB(sess),
		SubscriptionDB: getSubscriptionDB(sess),
		TagDB:          getTagDB(sess),
		AddressDB:      getAddressDB(sess),
		sess:           sess,
		sqlDB:          sqlDB,
	}
}

func (psdb *PlanetScaleDB) GetSQLDB() *sql.DB {
	return psdb.sqlDB
}

func (psdb *PlanetScaleDB) Close() error {
	return psdb.sess.Close()
}
