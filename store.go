package blogseed

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database holding the web application's blog_posts table.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the blog_posts table.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the preview server read while a load is running.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS blog_posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    content TEXT NOT NULL,
    excerpt TEXT,
    hashtags TEXT,
    image_url TEXT,
    published INTEGER NOT NULL DEFAULT 0,
    views INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`)
	return err
}

// ApplyScript executes a seed script in a single transaction. Nothing is
// kept if any statement fails.
func (s *Store) ApplyScript(ctx context.Context, script string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, script); err != nil {
		tx.Rollback()
		return fmt.Errorf("blogseed: apply seed: %w", err)
	}
	return tx.Commit()
}

// DeletePosts removes every post.
func (s *Store) DeletePosts(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts`)
	return err
}

// CountPosts returns the number of posts, published or not.
func (s *Store) CountPosts(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&n)
	return n, err
}

// ListPosts returns all published posts in insertion order. Index is the
// position in that order.
func (s *Store) ListPosts(ctx context.Context) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT title, slug, hashtags, content, excerpt, image_url FROM blog_posts WHERE published = 1 ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		p.Index = len(posts)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a single published post by slug.
func (s *Store) GetPost(ctx context.Context, slug string) (Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT title, slug, hashtags, content, excerpt, image_url FROM blog_posts WHERE slug = ? AND published = 1`, slug)
	return scanPost(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(r scanner) (Post, error) {
	var title, slug, content string
	var hashtags, excerpt, imageURL sql.NullString
	if err := r.Scan(&title, &slug, &hashtags, &content, &excerpt, &imageURL); err != nil {
		return Post{}, err
	}
	return Post{
		Title:    title,
		Slug:     slug,
		Hashtags: hashtags.String,
		Content:  content,
		Excerpt:  excerpt.String,
		ImageURL: imageURL.String,
	}, nil
}
