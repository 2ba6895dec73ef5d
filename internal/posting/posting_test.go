package posting

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const postingHTML = `
<html>
	<head><title>Careers</title><style>.x{}</style></head>
	<body>
		<nav>Jobs Home</nav>
		<div class="job-description">
			<h1>Senior Go Developer</h1>
			<ul><li>Go</li><li>Kubernetes</li></ul>
			<p>Build   distributed   services.</p>
		</div>
		<footer>Copyright</footer>
	</body>
</html>`

func TestLoadURLExtractsHTML(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	text, err := New(zap.NewNop()).Load(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, userAgent, gotUA)
	assert.Equal(t, "Senior Go Developer\nGo\nKubernetes\nBuild distributed services.", text)
}

func TestLoadURLGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("Go developer wanted.\n\n  Remote.  "))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gzip", r.Header.Get("Accept-Encoding"))
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	text, err := New(nil).Load(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Go developer wanted.\nRemote.", text)
}

func TestLoadURLBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(nil).Load(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posting.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Data Engineer \n\nSQL, Python\n"), 0o600))

	text, err := New(nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer\nSQL, Python", text)

	_, err = New(nil).Load(context.Background(), filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestLoadStdinHTML(t *testing.T) {
	client := New(nil)
	client.Stdin = strings.NewReader("<main><p>Frontend role</p><p>React</p></main>")

	text, err := client.Load(context.Background(), "-")
	require.NoError(t, err)
	assert.Equal(t, "Frontend role\nReact", text)
}

func TestLoadEmptySource(t *testing.T) {
	_, err := New(nil).Load(context.Background(), " ")
	require.Error(t, err)
}

func TestExtractMainTextFallsBackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><script>var x;</script><span>Only body text</span></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Only body text", text)
}
