package blogseed

import (
	"context"
	"sync"
	"time"
)

// PostCache is an in-memory cache of published posts with TTL. Posts come
// back with their category derived from the hashtags, since the seed table
// does not store it.
type PostCache struct {
	mu      sync.RWMutex
	posts   []Post
	fetched time.Time
	ttl     time.Duration
	store   *Store
	t       *Transformer
}

// NewPostCache creates a PostCache backed by the given Store.
func NewPostCache(s *Store, t *Transformer, ttl time.Duration) *PostCache {
	return &PostCache{store: s, t: t, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

func (c *PostCache) load(ctx context.Context) error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListPosts(ctx)
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []Post{}
	}
	for i := range posts {
		posts[i].Category = c.t.Categorize(posts[i].Hashtags)
	}
	c.posts = posts
	c.fetched = time.Now()
	return nil
}

// ensureLoaded tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded(ctx context.Context) ([]Post, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	return c.posts, nil
}

// ListPosts returns published posts in seed order.
func (c *PostCache) ListPosts(ctx context.Context) ([]Post, error) {
	return c.ensureLoaded(ctx)
}

// GetPost returns a single published post by slug from the cache.
func (c *PostCache) GetPost(ctx context.Context, slug string) (Post, error) {
	posts, err := c.ensureLoaded(ctx)
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}
