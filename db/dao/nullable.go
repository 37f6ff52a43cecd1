package dao

import (
	"database/sql"
	"time"
)

type NullInt64 struct {
	sql.NullInt64
}

// AsInt if null, returns -1
func (ni *NullInt64) AsInt() int64 {
	if !ni.NullInt64.Valid {
		return -1
	}
	return ni.NullInt64.Int64
}

type NullString struct {
	sql.NullString
}

func NullStringFrom(val *string) NullString {
	if val == nil {
		return NullString{}
	}
	return NullString{sql.NullString{String: *val, Valid: true}}
}

func (ns *NullString) Ptr() *string {
	if !ns.Valid {
		return nil
	}
	val := ns.String
	return &val
}

type NullTime struct {
	sql.NullTime
}

func NullTimeFrom(val *time.Time) NullTime {
	if val == nil {
		return NullTime{}
	}
	return NullTime{sql.NullTime{Time: *val, Valid: true}}
}

func (nt *NullTime) Ptr() *time.Time {
	if !nt.Valid {
		return nil
	}
	val := nt.Time
	return &val
}
