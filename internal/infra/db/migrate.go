package db

import (
	"database/sql"
)

// MigrateUp creates the schema used by the post and tag repositories.
// All statements are idempotent so the migration can run at every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id         UUID PRIMARY KEY,
    username   TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id           UUID PRIMARY KEY,
    title        TEXT NOT NULL,
    body         TEXT NOT NULL,
    slug         TEXT NOT NULL,
    photo_url    TEXT,
    published    BOOLEAN NOT NULL DEFAULT FALSE,
    view_count   BIGINT NOT NULL DEFAULT 0,
    like_count   BIGINT NOT NULL DEFAULT 0,
    published_at TIMESTAMPTZ,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_by   UUID NOT NULL REFERENCES users(id),
    UNIQUE(created_by, slug)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS tags (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS posts_to_tags (
    post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
    tag_id  UUID NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
    PRIMARY KEY (post_id, tag_id)
)`); err != nil {
		return err
	}

	indexes := []string{
		// Every listing filters on published = true
		`CREATE INDEX IF NOT EXISTS idx_posts_published ON posts(published) WHERE published = TRUE`,
		// Default listing order
		`CREATE INDEX IF NOT EXISTS idx_posts_published_at ON posts(published_at DESC)`,
		// Permalink lookup joins on author
		`CREATE INDEX IF NOT EXISTS idx_posts_created_by ON posts(created_by)`,
		// Batch tag resolution fans out from post IDs
		`CREATE INDEX IF NOT EXISTS idx_posts_to_tags_tag_id ON posts_to_tags(tag_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE search filter. Ignore errors: the
	// extension may already exist or the role may lack privileges.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)

	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_posts_title_gin ON posts USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_body_gin ON posts USING gin(body gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_users_username_gin ON users USING gin(username gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		// Fails without pg_trgm, which is fine
		_, _ = db.Exec(idx)
	}

	return nil
}

// MigrateDown drops the schema in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS posts_to_tags`,
		`DROP TABLE IF EXISTS tags`,
		`DROP TABLE IF EXISTS posts`,
		`DROP TABLE IF EXISTS users`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
