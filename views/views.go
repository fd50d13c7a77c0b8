// Package views holds the fixed page markup of the preview server.
package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/blogseed/markdown"
)

// SiteConfig holds site-wide settings every page needs.
type SiteConfig struct {
	Name string
	URL  string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}

// Post is the view of a seeded blog post.
type Post struct {
	Title    string
	Slug     string
	Hashtags string
	Category string
	Excerpt  string
	ImageURL string
	Content  string
}

// Link returns the public path of the post.
func (p Post) Link() string {
	return "/blog/" + url.PathEscape(p.Slug)
}

// Layout wraps body in the HTML document shell.
func Layout(cfg SiteConfig, meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := meta.Title
		if title == "" {
			title = cfg.Name
		} else {
			title += " | " + cfg.Name
		}
		var b strings.Builder
		b.WriteString("<!doctype html>\n<html lang=\"es\">\n<head>\n<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		fmt.Fprintf(&b, "<title>%s</title>\n", esc(title))
		if meta.Description != "" {
			fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", esc(meta.Description))
			fmt.Fprintf(&b, "<meta property=\"og:description\" content=\"%s\">\n", esc(meta.Description))
		}
		if meta.URL != "" {
			fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\">\n", esc(meta.URL))
			fmt.Fprintf(&b, "<meta property=\"og:url\" content=\"%s\">\n", esc(meta.URL))
		}
		if meta.OGType != "" {
			fmt.Fprintf(&b, "<meta property=\"og:type\" content=\"%s\">\n", esc(meta.OGType))
		}
		if meta.Image != "" {
			fmt.Fprintf(&b, "<meta property=\"og:image\" content=\"%s\">\n", esc(meta.Image))
		}
		fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\">\n", esc(title))
		b.WriteString("</head>\n<body>\n")
		fmt.Fprintf(&b, "<header><a href=\"/\">%s</a></header>\n<main>\n", esc(cfg.Name))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

// PostPage renders a full post.
func PostPage(cfg SiteConfig, post Post) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<article>\n")
		fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(post.Title))
		fmt.Fprintf(&b, "<p class=\"category\">%s</p>\n", esc(post.Category))
		if post.ImageURL != "" {
			fmt.Fprintf(&b, "<img src=\"%s\" alt=\"%s\" width=\"800\">\n", esc(post.ImageURL), esc(post.Title))
		}
		b.WriteString("<div class=\"content\">\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := markdown.Markdown(post.Content).Render(ctx, w); err != nil {
			return err
		}
		b.Reset()
		b.WriteString("</div>\n")
		if post.Hashtags != "" {
			fmt.Fprintf(&b, "<p class=\"hashtags\">%s</p>\n", esc(post.Hashtags))
		}
		fmt.Fprintf(&b, "<script type=\"application/ld+json\">%s</script>\n", BlogPostingJsonLD(cfg, post))
		b.WriteString("</article>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
	meta := PageMeta{
		Title:       post.Title,
		Description: markdown.PlainText(post.Excerpt),
		URL:         buildURL(cfg.URL, "blog", post.Slug),
		OGType:      "article",
		Image:       post.ImageURL,
	}
	return Layout(cfg, meta, body)
}

// IndexPage lists posts in seed order.
func IndexPage(cfg SiteConfig, posts []Post) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<ul class=\"posts\">\n")
		for _, p := range posts {
			fmt.Fprintf(&b, "<li><a href=\"%s\">%s</a> <span class=\"category\">%s</span><p>%s</p></li>\n",
				esc(p.Link()), esc(p.Title), esc(p.Category), esc(markdown.PlainText(p.Excerpt)))
		}
		b.WriteString("</ul>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout(cfg, PageMeta{URL: buildURL(cfg.URL), OGType: "website"}, body)
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return Layout(cfg, PageMeta{Title: "Not found"}, message("Post not found."))
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return Layout(cfg, PageMeta{Title: "Error"}, message("Something went wrong."))
}

func message(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<p class=\"message\">%s</p>\n", esc(text))
		return err
	})
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(cfg SiteConfig, post Post) string {
	postURL := buildURL(cfg.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": markdown.PlainText(post.Excerpt),
		"url":         postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.ImageURL != "" {
		data["image"] = post.ImageURL
	}
	if post.Category != "" {
		data["articleSection"] = post.Category
	}
	if post.Hashtags != "" {
		data["keywords"] = post.Hashtags
	}
	// json.Marshal escapes <, > and & so the block cannot close the script tag.
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

func esc(s string) string {
	return templ.EscapeString(s)
}
