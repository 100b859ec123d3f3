package database

import (
	"context"
	"fmt"
)

// Schema bootstrap. Slug/question uniqueness is enforced here at the store
// layer; concurrent duplicate creation surfaces as a unique violation that
// the repositories map to a Conflict error.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		slug        TEXT NOT NULL,
		icon        TEXT NOT NULL DEFAULT 'folder',
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_slug ON categories (slug)`,

	`CREATE TABLE IF NOT EXISTS tutorials (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		slug            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		content         TEXT NOT NULL DEFAULT '',
		category_id     TEXT NOT NULL,
		tags            TEXT[] NOT NULL DEFAULT '{}',
		image_url       TEXT NOT NULL DEFAULT '',
		video_url       TEXT NOT NULL DEFAULT '',
		affiliate_links JSONB NOT NULL DEFAULT '[]',
		views           BIGINT NOT NULL DEFAULT 0 CHECK (views >= 0),
		rating_sum      BIGINT NOT NULL DEFAULT 0 CHECK (rating_sum >= 0),
		rating_count    BIGINT NOT NULL DEFAULT 0 CHECK (rating_count >= 0),
		is_featured     BOOLEAN NOT NULL DEFAULT FALSE,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tutorials_slug ON tutorials (slug)`,
	`CREATE INDEX IF NOT EXISTS idx_tutorials_category ON tutorials (category_id)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id          TEXT PRIMARY KEY,
		tutorial_id TEXT NOT NULL,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		content     TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_tutorial ON comments (tutorial_id)`,

	`CREATE TABLE IF NOT EXISTS blog_posts (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		slug       TEXT NOT NULL,
		excerpt    TEXT NOT NULL DEFAULT '',
		content    TEXT NOT NULL DEFAULT '',
		image_url  TEXT NOT NULL DEFAULT '',
		tags       TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_blog_posts_slug ON blog_posts (slug)`,

	`CREATE TABLE IF NOT EXISTS faqs (
		id            TEXT PRIMARY KEY,
		question      TEXT NOT NULL,
		answer        TEXT NOT NULL,
		category      TEXT NOT NULL DEFAULT 'geral',
		display_order INT NOT NULL DEFAULT 0,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_faqs_question ON faqs (question)`,

	`CREATE TABLE IF NOT EXISTS contacts (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		subject    TEXT NOT NULL,
		message    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate applies the idempotent schema bootstrap.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	for _, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
