package server

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Schema for the avatars cache table. Applied by OpenCache.
const cacheSchema = `
CREATE TABLE IF NOT EXISTS avatars (
	key        TEXT PRIMARY KEY,
	format     TEXT NOT NULL,
	body       BLOB NOT NULL,
	created_at INTEGER NOT NULL
);
`

// Cache persists rendered avatars in a SQLite table keyed by the
// request digest. Avatars are deterministic, so entries never expire;
// created_at exists for external pruning.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (or creates) the cache database at path and applies
// the schema. Use ":memory:" for an ephemeral cache.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps :memory: databases from losing their
	// schema and serializes writers.
	db.SetMaxOpenConns(1)

	c := &Cache{db: db}
	if err := c.init(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) init() error {
	_, err := c.db.Exec(cacheSchema)
	return err
}

// Get returns the cached body for key, with ok reporting whether the
// key was present.
func (c *Cache) Get(ctx context.Context, key string) (body []byte, ok bool, err error) {
	err = c.db.QueryRowContext(ctx, `SELECT body FROM avatars WHERE key = ?`, key).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

// Put stores body under key, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, key, format string, body []byte) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO avatars (key, format, body, created_at)
		VALUES (?, ?, ?, ?)
	`, key, format, body, time.Now().Unix())
	return err
}

// Len reports the number of cached avatars.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM avatars`).Scan(&n)
	return n, err
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
