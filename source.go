package blogseed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingColumn is returned when the dataset header lacks the title column.
var ErrMissingColumn = errors.New("missing column")

// Columns names the dataset header cells that hold each input field.
type Columns struct {
	Title    string `json:"title"`
	Hashtags string `json:"hashtags"`
	Content  string `json:"content"`
}

// DefaultColumns returns the header names of the blog spreadsheet export.
func DefaultColumns() Columns {
	return Columns{
		Title:    "Nombre del Post (Máx 60)",
		Hashtags: "Hashtags",
		Content:  "Desarrollo Detallado con Soporte Psicológico (250–350 palabras)",
	}
}

func (c *Columns) setDefaults() {
	d := DefaultColumns()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Hashtags == "" {
		c.Hashtags = d.Hashtags
	}
	if c.Content == "" {
		c.Content = d.Content
	}
}

// ReadCSV reads every row with a non-blank title, in file order. Missing
// hashtag or content columns read as empty strings.
func ReadCSV(r io.Reader, cols Columns) ([]InputRecord, error) {
	cols.setDefaults()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("blogseed: read header: %w: %q", ErrMissingColumn, cols.Title)
	}
	if err != nil {
		return nil, fmt.Errorf("blogseed: read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	titleCol, ok := index[cols.Title]
	if !ok {
		return nil, fmt.Errorf("blogseed: read header: %w: %q", ErrMissingColumn, cols.Title)
	}
	hashtagsCol, hasHashtags := index[cols.Hashtags]
	contentCol, hasContent := index[cols.Content]

	field := func(row []string, col int, ok bool) string {
		if !ok || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	var records []InputRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("blogseed: read row: %w", err)
		}
		title := field(row, titleCol, true)
		if title == "" {
			continue
		}
		records = append(records, InputRecord{
			Title:    title,
			Hashtags: field(row, hashtagsCol, hasHashtags),
			Content:  field(row, contentCol, hasContent),
		})
	}
	return records, nil
}
