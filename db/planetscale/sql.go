package planetscale

import (
	"database/sql"
	"strings"

	appDb "github.com/navbryce/next-blog-be/db"
	"github.com/upper/db/v4"
)

func convertDbRawToInterface(expr ...*db.RawExpr) []interface{} {
	output := make([]interface{}, len(expr))
	for i, rawExpr := range expr {
		output[i] = interface{}(rawExpr)
	}
	return output
}

// columnsOf adapts a column list shared by Columns and Select
func columnsOf(cols []string) []interface{} {
	output := make([]interface{}, len(cols))
	for i, col := range cols {
		output[i] = col
	}
	return output
}

// conditions collects AND-ed where clauses for the query builder
type conditions struct {
	clauses []string
	args    []interface{}
}

func (c *conditions) add(clause string, args ...interface{}) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

func (c *conditions) apply(selector db.Selector) db.Selector {
	if len(c.clauses) == 0 {
		return selector
	}
	return selector.Where(append([]interface{}{strings.Join(c.clauses, " AND ")}, c.args...)...)
}

func ignoreNoRows(err error) error {
	if err == db.ErrNoMoreRows {
		return nil
	}
	return err
}

// requireAffected turns a zero row change into ErrNotFound
func requireAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appDb.ErrNotFound
	}
	return nil
}

var txOpts = &sql.TxOptions{Isolation: sql.LevelReadCommitted}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike lowercases val and escapes LIKE wildcards
func escapeLike(val string) string {
	return likeEscaper.Replace(strings.ToLower(val))
}
