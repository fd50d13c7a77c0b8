package blogseed

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/titanous/json5"
)

// Config holds all settings for generating, loading and previewing seed data.
type Config struct {
	InputPath     string  `json:"input"`         // CSV dataset (default "Blog_Post_G1.csv")
	SQLPath       string  `json:"sqlOut"`        // SQL script (default "seed_blog_posts.sql")
	JSONPath      string  `json:"jsonOut"`       // JSON mirror (default "blog_posts.json")
	Table         string  `json:"table"`         // Target table (default "blog_posts")
	ExcerptLength int     `json:"excerptLength"` // Excerpt length in characters (default 150)
	Columns       Columns `json:"columns"`       // Dataset header names

	DatabasePath string `json:"database"` // SQLite path (default "data/blog.db")
	Addr         string `json:"addr"`     // Preview listen address (default ":3000")
	SiteName     string `json:"siteName"` // Preview site name (default "Blog")
	SiteURL      string `json:"siteURL"`  // Canonical URL (default "http://localhost:3000")

	PostCacheTTL time.Duration `json:"-"` // Preview cache TTL (default 5min)
}

func (c *Config) setDefaults() {
	if c.InputPath == "" {
		c.InputPath = "Blog_Post_G1.csv"
	}
	if c.SQLPath == "" {
		c.SQLPath = "seed_blog_posts.sql"
	}
	if c.JSONPath == "" {
		c.JSONPath = "blog_posts.json"
	}
	if c.Table == "" {
		c.Table = DefaultTable
	}
	if c.ExcerptLength <= 0 {
		c.ExcerptLength = DefaultRules().ExcerptLength
	}
	c.Columns.setDefaults()
	if c.DatabasePath == "" {
		c.DatabasePath = "data/blog.db"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.SiteName == "" {
		c.SiteName = "Blog"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:3000"
	}
	c.SiteURL = strings.TrimSuffix(c.SiteURL, "/")
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	var c Config
	c.setDefaults()
	return c
}

// LoadConfig builds the configuration from, in increasing priority: defaults,
// the JSON5 file at path and its ".local" sibling, a .env file next to the
// working directory, and the process environment. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		fileCfg, err := ReadConfigFile[Config](path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("blogseed: read config %s: %w", path, err)
		}
		cfg = fileCfg
	}
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, fmt.Errorf("blogseed: load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.setDefaults()
	return cfg, nil
}

// ReadConfigFile reads name (e.g. "blogseed.json5") and merges
// "<name>.local.<ext>" over it when present. It returns os.ErrNotExist
// when neither file exists.
func ReadConfigFile[T any](name string) (T, error) {
	var out T
	found := false

	base, err := os.ReadFile(name)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(base) > 0 {
		if err := json5.Unmarshal(base, &out); err != nil {
			return out, err
		}
		found = true
	}

	ext := filepath.Ext(name)
	localName := strings.TrimSuffix(name, ext) + ".local" + ext
	local, err := os.ReadFile(localName)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(local) > 0 {
		var override T
		if err := json5.Unmarshal(local, &override); err != nil {
			return out, err
		}
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return out, err
		}
		found = true
	}

	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}

// loadDotEnv loads KEY=VALUE pairs from path without overriding variables
// that are already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func (c *Config) applyEnv() error {
	c.InputPath = EnvOr("BLOGSEED_INPUT", c.InputPath)
	c.SQLPath = EnvOr("BLOGSEED_SQL_OUT", c.SQLPath)
	c.JSONPath = EnvOr("BLOGSEED_JSON_OUT", c.JSONPath)
	c.Table = EnvOr("BLOGSEED_TABLE", c.Table)
	c.DatabasePath = EnvOr("DATABASE_PATH", c.DatabasePath)
	c.Addr = EnvOr("ADDR", c.Addr)
	c.SiteName = EnvOr("SITE_NAME", c.SiteName)
	c.SiteURL = EnvOr("SITE_URL", c.SiteURL)
	if v := os.Getenv("BLOGSEED_EXCERPT_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("blogseed: BLOGSEED_EXCERPT_LENGTH: %w", err)
		}
		c.ExcerptLength = n
	}
	if v := os.Getenv("POST_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("blogseed: POST_CACHE_TTL: %w", err)
		}
		c.PostCacheTTL = d
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
