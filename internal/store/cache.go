package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"campus-cli/internal/model"

	_ "modernc.org/sqlite"
)

// Cache is the local read-through copy of the last successfully fetched
// course tree, keyed by course id. It only makes first paint instant and
// allows offline read-only browsing. It is never merged with server state:
// every successful fetch replaces the cached row wholesale, and a stale cache
// loses to the next fetch unconditionally.
type Cache struct {
	// Dir is the cache directory; empty means ConfigDir().
	Dir string
}

// ErrCacheMiss is returned when no tree has been cached for the course.
var ErrCacheMiss = errors.New("course not in cache")

// CachedTree is one cached course tree plus when it was fetched.
type CachedTree struct {
	Course    model.Course
	Modules   []model.Module
	FetchedAt time.Time
}

func (c Cache) path() (string, error) {
	dir := c.Dir
	if dir == "" {
		d, err := ConfigDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache.sqlite"), nil
}

func (c Cache) open(ctx context.Context) (*sql.DB, error) {
	path, err := c.path()
	if err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS course_cache (
		course_id    TEXT PRIMARY KEY,
		course_json  TEXT NOT NULL,
		modules_json TEXT NOT NULL,
		fetched_at   TEXT NOT NULL
	);`)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// SaveTree replaces the cached tree for the course.
func (c Cache) SaveTree(ctx context.Context, course model.Course, modules []model.Module) error {
	db, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	cb, err := json.Marshal(course)
	if err != nil {
		return err
	}
	mb, err := json.Marshal(modules)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO course_cache (course_id, course_json, modules_json, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(course_id) DO UPDATE SET
		   course_json = excluded.course_json,
		   modules_json = excluded.modules_json,
		   fetched_at = excluded.fetched_at;`,
		course.ID, string(cb), string(mb), time.Now().UTC().Format(time.RFC3339))
	return err
}

func (c Cache) LoadTree(ctx context.Context, courseID string) (CachedTree, error) {
	db, err := c.open(ctx)
	if err != nil {
		return CachedTree{}, err
	}
	defer db.Close()

	var courseJSON, modulesJSON, fetchedAt string
	err = db.QueryRowContext(ctx,
		`SELECT course_json, modules_json, fetched_at FROM course_cache WHERE course_id = ?;`,
		courseID).Scan(&courseJSON, &modulesJSON, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return CachedTree{}, ErrCacheMiss
	}
	if err != nil {
		return CachedTree{}, err
	}

	var out CachedTree
	if err := json.Unmarshal([]byte(courseJSON), &out.Course); err != nil {
		return CachedTree{}, err
	}
	if err := json.Unmarshal([]byte(modulesJSON), &out.Modules); err != nil {
		return CachedTree{}, err
	}
	if t, err := time.Parse(time.RFC3339, fetchedAt); err == nil {
		out.FetchedAt = t
	}
	return out, nil
}

// Clear drops every cached tree.
func (c Cache) Clear(ctx context.Context) error {
	db, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `DELETE FROM course_cache;`)
	return err
}
