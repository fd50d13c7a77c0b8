package verify

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "http://blog.test/blog/" + DefaultSlug

const renderedPage = `<html><head><title>x</title></head><body>
<h1>Cómo Identificar (Y Salir De) Relaciones Tóxicas</h1>
<p>Control excesivo y celos.</p></body></html>`

func newTestVerifier(t *testing.T) (*Verifier, *httpmock.MockTransport, *bytes.Buffer) {
	t.Helper()
	v := New()
	v.URL = testURL
	v.Interval = time.Millisecond
	out := &bytes.Buffer{}
	v.Out = out

	httpTransport := httpmock.NewMockTransport()
	v.client.SetTransport(httpTransport)
	return v, httpTransport, out
}

func TestRunSucceedsFirstAttempt(t *testing.T) {
	v, httpTransport, out := newTestVerifier(t)
	httpTransport.RegisterResponder("GET", testURL, httpmock.NewStringResponder(http.StatusOK, renderedPage))

	ok, err := v.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, httpTransport.GetTotalCallCount())
	assert.Contains(t, out.String(), "Testing URL: "+testURL)
	assert.Contains(t, out.String(), "SUCCESS: Blog post title found.")
	assert.Contains(t, out.String(), "SUCCESS: Blog post content found.")
}

func TestRunRetriesUntilRendered(t *testing.T) {
	v, httpTransport, out := newTestVerifier(t)
	calls := 0
	httpTransport.RegisterResponder("GET", testURL, func(req *http.Request) (*http.Response, error) {
		calls++
		switch calls {
		case 1:
			return nil, errors.New("connection refused")
		case 2:
			return httpmock.NewStringResponse(http.StatusServiceUnavailable, "starting"), nil
		case 3:
			return httpmock.NewStringResponse(http.StatusOK, "<html><body>Loading</body></html>"), nil
		default:
			return httpmock.NewStringResponse(http.StatusOK, renderedPage), nil
		}
	})

	ok, err := v.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, calls)
	assert.Contains(t, out.String(), "Connection error: ")
	assert.Contains(t, out.String(), "Status code: 503")
	assert.Contains(t, out.String(), "Waiting for blog post content...")
	assert.NotContains(t, out.String(), "FAILURE")
}

func TestRunFailsAfterAttempts(t *testing.T) {
	v, httpTransport, out := newTestVerifier(t)
	v.Attempts = 3
	httpTransport.RegisterResponder("GET", testURL, httpmock.NewStringResponder(http.StatusNotFound, "nope"))

	ok, err := v.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, httpTransport.GetTotalCallCount())
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("Status code: 404")))
	assert.Contains(t, out.String(), "FAILURE: Timed out waiting for blog post.")
}

func TestRunMissingSnippetStillSucceeds(t *testing.T) {
	v, httpTransport, out := newTestVerifier(t)
	page := `<html><head><script>var x = 1;</script></head><body><h1>` + DefaultTitle + "</h1>\n<p>Otro   texto</p></body></html>"
	httpTransport.RegisterResponder("GET", testURL, httpmock.NewStringResponder(http.StatusOK, page))

	ok, err := v.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "WARNING: Title found but content snippet 'Control excesivo' missing.")
	assert.Contains(t, out.String(), "Content preview: "+DefaultTitle+" Otro texto...")
}

func TestRunCancelled(t *testing.T) {
	v, httpTransport, out := newTestVerifier(t)
	v.Interval = time.Hour
	httpTransport.RegisterResponder("GET", testURL, httpmock.NewStringResponder(http.StatusNotFound, ""))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	ok, err := v.Run(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "FAILURE")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "Hola mundo", Preview("<p>Hola</p>\n<p>mundo</p>", 100))
	assert.Equal(t, "Hol", Preview("<p>Hola</p>", 3))
	assert.Equal(t, "ñan", Preview("ñandú", 3))
}

func TestPostURL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000/blog/a", PostURL("http://localhost:3000/", "a"))
	assert.Equal(t, "http://localhost:3000/blog/"+DefaultSlug, New().URL)
}
