package blogseed

import (
	"strings"
	"unicode/utf8"
)

// Transformer derives slug, category, excerpt, image and completed content
// for a post. It holds no state besides its rules and is safe to share.
type Transformer struct {
	rules    Rules
	replacer *strings.Replacer
}

// NewTransformer creates a Transformer from a private copy of rules.
func NewTransformer(rules Rules) *Transformer {
	rules = rules.clone()
	if rules.ExcerptLength <= 0 {
		rules.ExcerptLength = DefaultRules().ExcerptLength
	}
	pairs := make([]string, 0, 2*len(rules.SlugReplacements))
	for _, r := range rules.SlugReplacements {
		pairs = append(pairs, r.Old, r.New)
	}
	return &Transformer{rules: rules, replacer: strings.NewReplacer(pairs...)}
}

// Rules returns a copy of the transformer's rules.
func (t *Transformer) Rules() Rules {
	return t.rules.clone()
}

// Transform builds the Post for rec, which is the index-th kept record.
func (t *Transformer) Transform(rec InputRecord, index int) Post {
	title := strings.TrimSpace(rec.Title)
	hashtags := strings.TrimSpace(rec.Hashtags)
	content := t.Augment(strings.TrimSpace(rec.Content))
	category := t.Categorize(hashtags)
	return Post{
		Title:    title,
		Slug:     t.Slugify(title),
		Hashtags: hashtags,
		Content:  content,
		Excerpt:  t.Excerpt(content, t.rules.ExcerptLength),
		Category: category,
		ImageURL: t.SelectImage(category, index),
		Index:    index,
	}
}

// Slugify converts a title to a URL-safe slug of [a-z0-9-].
func (t *Transformer) Slugify(s string) string {
	s = t.replacer.Replace(strings.ToLower(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Categorize returns the category of the first rule whose keyword occurs in hashtags.
func (t *Transformer) Categorize(hashtags string) string {
	h := strings.ToLower(hashtags)
	for _, cr := range t.rules.CategoryRules {
		for _, kw := range cr.Keywords {
			if strings.Contains(h, kw) {
				return cr.Category
			}
		}
	}
	return t.rules.DefaultCategory
}

// Theme returns the image theme keyword for the index-th post of category.
// Unknown categories use the default category's themes.
func (t *Transformer) Theme(category string, index int) string {
	themes, ok := t.rules.Themes[category]
	if !ok {
		themes = t.rules.Themes[t.rules.DefaultCategory]
	}
	if len(themes) == 0 {
		return ""
	}
	i := index % len(themes)
	if i < 0 {
		i += len(themes)
	}
	return themes[i]
}

// SelectImage returns the cover image URL for a post. The theme keyword is
// resolved but the placeholder URL is the same for every post.
func (t *Transformer) SelectImage(category string, index int) string {
	_ = t.Theme(category, index)
	return t.rules.ImageURL
}

// Augment completes short content with a reflection paragraph and appends a
// conclusion unless the text already has one. It only ever appends.
func (t *Transformer) Augment(content string) string {
	if utf8.RuneCountInString(content) < t.rules.MinContentLength {
		content += "\n\n" + t.rules.Reflection
	}
	lower := strings.ToLower(content)
	if !strings.Contains(lower, t.rules.ConclusionMarker) &&
		!strings.Contains(tail(lower, t.rules.KeyWindow), t.rules.KeyMarker) {
		content += "\n\n" + t.rules.Conclusion
	}
	return content
}

// Excerpt flattens newlines and cuts content to at most maxLength characters
// on a word boundary, marking the cut with an ellipsis.
func (t *Transformer) Excerpt(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = t.rules.ExcerptLength
	}
	clean := strings.NewReplacer("\n", " ", "\r", " ").Replace(content)
	runes := []rune(clean)
	if len(runes) <= maxLength {
		return clean
	}
	prefix := string(runes[:maxLength])
	if i := strings.LastIndex(prefix, " "); i >= 0 {
		prefix = prefix[:i]
	}
	return prefix + t.rules.Ellipsis
}

// tail returns the last n characters of s.
func tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
