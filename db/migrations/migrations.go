package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

// statements are idempotent and applied in order. No foreign keys: the
// target is PlanetScale, which does not enforce them.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS person (
	id CHAR(36) NOT NULL PRIMARY KEY,
	created_at DATETIME(6) NOT NULL,
	full_name VARCHAR(255) NOT NULL,
	birth_date DATETIME(6) NULL,
	gender VARCHAR(16) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone_number VARCHAR(32) NULL,
	password_hash VARCHAR(255) NOT NULL,
	UNIQUE KEY person_email_uq (email)
)`,
	`CREATE TABLE IF NOT EXISTS refresh_token (
	id CHAR(36) NOT NULL PRIMARY KEY,
	token VARCHAR(1024) NOT NULL,
	user_id CHAR(36) NOT NULL,
	expires_at DATETIME(6) NOT NULL,
	revoked BOOLEAN NOT NULL DEFAULT FALSE,
	created_at DATETIME(6) NOT NULL,
	UNIQUE KEY refresh_token_token_uq (token(255)),
	KEY refresh_token_user_idx (user_id),
	KEY refresh_token_expires_idx (expires_at)
)`,
	`CREATE TABLE IF NOT EXISTS tag (
	id CHAR(36) NOT NULL PRIMARY KEY,
	created_at DATETIME(6) NOT NULL,
	name VARCHAR(128) NOT NULL,
	UNIQUE KEY tag_name_uq (name)
)`,
	`CREATE TABLE IF NOT EXISTS community (
	id CHAR(36) NOT NULL PRIMARY KEY,
	created_at DATETIME(6) NOT NULL,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	is_closed BOOLEAN NOT NULL DEFAULT FALSE,
	subscribers_count INT NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS community_role (
	user_id CHAR(36) NOT NULL,
	community_id CHAR(36) NOT NULL,
	role VARCHAR(16) NOT NULL,
	PRIMARY KEY (user_id, community_id),
	KEY community_role_community_idx (community_id, role)
)`,
	`CREATE TABLE IF NOT EXISTS post (
	id CHAR(36) NOT NULL PRIMARY KEY,
	created_at DATETIME(6) NOT NULL,
	title VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	reading_time INT NOT NULL DEFAULT 0,
	image VARCHAR(1024) NULL,
	author_id CHAR(36) NOT NULL,
	author_name VARCHAR(255) NOT NULL,
	community_id CHAR(36) NULL,
	community_name VARCHAR(255) NULL,
	address_id CHAR(36) NULL,
	likes INT NOT NULL DEFAULT 0,
	comments_count INT NOT NULL DEFAULT 0,
	KEY post_author_idx (author_id),
	KEY post_community_idx (community_id),
	KEY post_created_idx (created_at)
)`,
	`CREATE TABLE IF NOT EXISTS post_tag (
	post_id CHAR(36) NOT NULL,
	tag_id CHAR(36) NOT NULL,
	PRIMARY KEY (post_id, tag_id),
	KEY post_tag_tag_idx (tag_id)
)`,
	`CREATE TABLE IF NOT EXISTS post_like (
	post_id CHAR(36) NOT NULL,
	user_id CHAR(36) NOT NULL,
	created_at DATETIME(6) NOT NULL,
	PRIMARY KEY (post_id, user_id)
)`,
	`CREATE TABLE IF NOT EXISTS comment (
	id CHAR(36) NOT NULL PRIMARY KEY,
	created_at DATETIME(6) NOT NULL,
	modified_date DATETIME(6) NULL,
	delete_date DATETIME(6) NULL,
	status VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
	content TEXT NOT NULL,
	author_id CHAR(36) NOT NULL,
	author_name VARCHAR(255) NOT NULL,
	post_id CHAR(36) NOT NULL,
	parent_id CHAR(36) NULL,
	sub_comments INT NOT NULL DEFAULT 0,
	KEY comment_post_idx (post_id),
	KEY comment_parent_idx (parent_id)
)`,
	`CREATE TABLE IF NOT EXISTS address_object (
	id BIGINT NOT NULL PRIMARY KEY,
	object_id BIGINT NOT NULL,
	object_guid CHAR(36) NOT NULL,
	name VARCHAR(255) NOT NULL,
	type_name VARCHAR(64) NOT NULL,
	level INT NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	is_actual BOOLEAN NOT NULL,
	is_active BOOLEAN NOT NULL,
	KEY address_object_object_idx (object_id),
	KEY address_object_guid_idx (object_guid)
)`,
	`CREATE TABLE IF NOT EXISTS address_house (
	id BIGINT NOT NULL PRIMARY KEY,
	object_id BIGINT NOT NULL,
	object_guid CHAR(36) NOT NULL,
	house_num VARCHAR(64) NOT NULL DEFAULT '',
	add_num1 VARCHAR(64) NOT NULL DEFAULT '',
	add_num2 VARCHAR(64) NOT NULL DEFAULT '',
	house_type INT NOT NULL DEFAULT 0,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	is_actual BOOLEAN NOT NULL,
	is_active BOOLEAN NOT NULL,
	KEY address_house_object_idx (object_id),
	KEY address_house_guid_idx (object_guid)
)`,
	`CREATE TABLE IF NOT EXISTS address_hierarchy (
	id BIGINT NOT NULL PRIMARY KEY,
	object_id BIGINT NOT NULL,
	parent_obj_id BIGINT NULL,
	path VARCHAR(1024) NOT NULL DEFAULT '',
	is_active BOOLEAN NOT NULL,
	KEY address_hierarchy_object_idx (object_id),
	KEY address_hierarchy_parent_idx (parent_obj_id)
)`,
}

// Count is the number of statements Apply executes
func Count() int {
	return len(statements)
}

func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
