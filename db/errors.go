package db

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("row not found")
)

const mysqlDupEntry = 1062

func IsDupKeyErr(error *mysql.MySQLError) bool {
	return error.Number == mysqlDupEntry || strings.Contains(error.Error(), "Duplicate")
}

var dupKeyPattern = regexp.MustCompile(`for key '([^']+)'`)

func GetDupKey(error *mysql.MySQLError) string {
	match := dupKeyPattern.FindStringSubmatch(error.Error())
	if match == nil {
		return ""
	}
	return match[1]
}

// TranslateErr maps driver errors onto the package sentinels
func TranslateErr(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && IsDupKeyErr(mysqlErr) {
		return ErrDuplicateKey
	}
	return err
}
