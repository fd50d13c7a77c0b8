package blogseed

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultTable is the blog table of the web application.
const DefaultTable = "blog_posts"

// WriteSQL writes one INSERT statement per post, each followed by a blank line.
// Every post is inserted as published.
func WriteSQL(w io.Writer, posts []Post, table string) error {
	if table == "" {
		table = DefaultTable
	}
	bw := bufio.NewWriter(w)
	for _, p := range posts {
		_, err := fmt.Fprintf(bw, "INSERT INTO %s (title, slug, hashtags, content, excerpt, image_url, published)\nVALUES (%s, %s, %s, %s, %s, %s, 1);\n\n",
			table,
			quote(p.Title), quote(p.Slug), quote(p.Hashtags), quote(p.Content), quote(p.Excerpt), quote(p.ImageURL))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// quote renders s as a single-quoted SQL string literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
