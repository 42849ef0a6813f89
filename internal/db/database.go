package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Database, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	db := &Database{Pool: pool}
	if err := db.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return db, nil
}

func (db *Database) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT DEFAULT 'citizen',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS citizens (
		user_id INT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		phone_number TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS residents (
		id TEXT PRIMARY KEY,
		nik TEXT UNIQUE NOT NULL,
		full_name TEXT NOT NULL,
		gender TEXT NOT NULL DEFAULT '',
		place_of_birth TEXT NOT NULL DEFAULT '',
		date_of_birth TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		rt_rw TEXT NOT NULL DEFAULT '',
		religion TEXT NOT NULL DEFAULT '',
		occupation TEXT NOT NULL DEFAULT '',
		marital_status TEXT NOT NULL DEFAULT '',
		education_level TEXT NOT NULL DEFAULT '',
		relationship_to_head TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS letter_requests (
		id TEXT PRIMARY KEY,
		requester_name TEXT NOT NULL,
		nik TEXT NOT NULL,
		phone_number TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		letter_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'processing',
		submission_data TEXT NOT NULL,
		document_number TEXT,
		admin_notes TEXT,
		file_links JSONB DEFAULT '[]',
		requester_id INT REFERENCES users(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS complaints (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		submission_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		summary TEXT NOT NULL,
		sentiment TEXT NOT NULL,
		keywords JSONB DEFAULT '[]',
		submitter_id INT REFERENCES users(id),
		admin_response TEXT,
		status TEXT NOT NULL DEFAULT 'New'
	);

	CREATE TABLE IF NOT EXISTS announcements (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		publish_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		author_name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS village_settings (
		key TEXT PRIMARY KEY,
		image_data TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_residents_full_name ON residents(full_name);
	CREATE INDEX IF NOT EXISTS idx_letter_requests_status ON letter_requests(status);
	CREATE INDEX IF NOT EXISTS idx_letter_requests_created ON letter_requests(created_at);
	CREATE INDEX IF NOT EXISTS idx_complaints_date ON complaints(submission_date);
	`

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

func (db *Database) Close() {
	db.Pool.Close()
}
