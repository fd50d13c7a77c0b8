package blogseed

import (
	"encoding/json"
	"io"
)

// WriteJSON writes posts as one indented JSON array. Non-ASCII text and
// HTML characters are written literally.
func WriteJSON(w io.Writer, posts []Post) error {
	if posts == nil {
		posts = []Post{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(posts)
}
