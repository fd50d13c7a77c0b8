package blogseed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Result summarises a Run.
type Result struct {
	Posts    []Post
	SQLPath  string
	JSONPath string
}

// Generate transforms records in order; each post's Index is its position in records.
func Generate(records []InputRecord, t *Transformer) []Post {
	posts := make([]Post, 0, len(records))
	for i, rec := range records {
		posts = append(posts, t.Transform(rec, i))
	}
	return posts
}

// Run reads the dataset, transforms every record and writes the SQL script
// and the JSON mirror. The whole dataset is read before anything is written.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (Result, error) {
	cfg.setDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	records, err := readDataset(cfg.InputPath, cfg.Columns)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	rules := DefaultRules()
	rules.ExcerptLength = cfg.ExcerptLength
	t := NewTransformer(rules)
	posts := Generate(records, t)
	for _, p := range posts {
		logger.Debug("post transformed",
			"index", p.Index,
			"slug", p.Slug,
			"category", p.Category,
			"theme", t.Theme(p.Category, p.Index))
	}
	logger.Info("posts processed", "count", len(posts), "input", cfg.InputPath)

	if err := writeFile(cfg.SQLPath, func(f *os.File) error { return WriteSQL(f, posts, cfg.Table) }); err != nil {
		return Result{}, err
	}
	logger.Info("sql script written", "path", cfg.SQLPath)

	if err := writeFile(cfg.JSONPath, func(f *os.File) error { return WriteJSON(f, posts) }); err != nil {
		return Result{}, err
	}
	logger.Info("json written", "path", cfg.JSONPath)

	return Result{Posts: posts, SQLPath: cfg.SQLPath, JSONPath: cfg.JSONPath}, nil
}

func readDataset(path string, cols Columns) ([]InputRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("blogseed: open dataset: %w", err)
	}
	defer f.Close()
	records, err := ReadCSV(f, cols)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return records, nil
}

// writeFile creates path (and its directory) and hands it to write.
func writeFile(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("blogseed: create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("blogseed: create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("blogseed: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("blogseed: close %s: %w", path, err)
	}
	return nil
}
