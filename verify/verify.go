// Package verify polls a running blog until a seeded post renders.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
)

// Defaults for the post checked after a fresh seed.
const (
	DefaultSlug           = "identificar-salir-relaciones-toxicas"
	DefaultBaseURL        = "http://localhost:3000"
	DefaultTitle          = "Cómo Identificar (Y Salir De) Relaciones Tóxicas"
	DefaultContentSnippet = "Control excesivo"
	DefaultAttempts       = 5
	DefaultInterval       = time.Second
	DefaultTimeout        = 5 * time.Second

	previewLength = 500
)

// ErrNotRendered is returned by a single attempt that did not find the post.
var ErrNotRendered = errors.New("verify: post not rendered")

// Verifier fetches URL until the body contains Title or Attempts run out.
type Verifier struct {
	URL            string
	Title          string
	ContentSnippet string
	Attempts       int
	Interval       time.Duration
	Timeout        time.Duration
	Out            io.Writer

	client *resty.Client
}

// PostURL returns the public URL of slug under base.
func PostURL(base, slug string) string {
	return strings.TrimSuffix(base, "/") + "/blog/" + slug
}

// New returns a Verifier for the default post on a local dev server.
func New() *Verifier {
	return &Verifier{
		URL:            PostURL(DefaultBaseURL, DefaultSlug),
		Title:          DefaultTitle,
		ContentSnippet: DefaultContentSnippet,
		Attempts:       DefaultAttempts,
		Interval:       DefaultInterval,
		Timeout:        DefaultTimeout,
		Out:            os.Stdout,
		client:         resty.New(),
	}
}

func (v *Verifier) setDefaults() {
	if v.Attempts <= 0 {
		v.Attempts = DefaultAttempts
	}
	if v.Interval < 0 {
		v.Interval = 0
	}
	if v.Timeout <= 0 {
		v.Timeout = DefaultTimeout
	}
	if v.Out == nil {
		v.Out = io.Discard
	}
	if v.client == nil {
		v.client = resty.New()
	}
}

// Run polls until the post renders. It reports false with a nil error when
// every attempt failed, and the context error when ctx ends first.
func (v *Verifier) Run(ctx context.Context) (bool, error) {
	v.setDefaults()
	v.client.SetTimeout(v.Timeout)

	fmt.Fprintf(v.Out, "Testing URL: %s\n", v.URL)

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(v.Interval), uint64(v.Attempts-1)),
		ctx,
	)
	err := backoff.Retry(func() error { return v.attempt(ctx) }, b)
	if err == nil {
		return true, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	fmt.Fprintln(v.Out, "FAILURE: Timed out waiting for blog post.")
	return false, nil
}

func (v *Verifier) attempt(ctx context.Context) error {
	resp, err := v.client.R().SetContext(ctx).Get(v.URL)
	if err != nil {
		fmt.Fprintf(v.Out, "Connection error: %v\n", err)
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		fmt.Fprintf(v.Out, "Status code: %d\n", resp.StatusCode())
		return fmt.Errorf("%w: status %d", ErrNotRendered, resp.StatusCode())
	}
	body := resp.String()
	if !strings.Contains(body, v.Title) {
		fmt.Fprintln(v.Out, "Waiting for blog post content...")
		return ErrNotRendered
	}
	fmt.Fprintln(v.Out, "SUCCESS: Blog post title found.")
	if v.ContentSnippet == "" || strings.Contains(body, v.ContentSnippet) {
		fmt.Fprintln(v.Out, "SUCCESS: Blog post content found.")
		return nil
	}
	// The title alone counts; the body may have been reworded.
	fmt.Fprintf(v.Out, "WARNING: Title found but content snippet '%s' missing.\n", v.ContentSnippet)
	fmt.Fprintf(v.Out, "Content preview: %s...\n", Preview(body, previewLength))
	return nil
}

// Preview returns up to n characters of the visible text of an HTML page.
func Preview(page string, n int) string {
	text := page
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(page)); err == nil {
		doc.Find("script, style, head").Remove()
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")
	if r := []rune(text); len(r) > n {
		text = string(r[:n])
	}
	return text
}
