// Package posting loads job descriptions from files, stdin or job board URLs.
package posting

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout  = 30 * time.Second
	userAgent       = "resume-ats/1.0 (+https://github.com/qerope/resume-ats)"
	acceptEncoding  = "gzip"
	maxPostingBytes = 4 << 20
)

// FetchError is returned when a posting URL cannot be retrieved.
type FetchError struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Client fetches and extracts job postings.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	Stdin      io.Reader
}

func New(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		UserAgent: userAgent,
		Stdin:     os.Stdin,
	}
}

// Load returns the plain text of the posting at source. Source is an
// http(s) URL, "-" for stdin, or a file path. HTML content is reduced to
// its main text.
func (c *Client) Load(ctx context.Context, source string) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", fmt.Errorf("job posting source is required")
	}

	if isURL(source) {
		return c.fetch(ctx, source)
	}

	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(io.LimitReader(c.Stdin, maxPostingBytes))
		if err != nil {
			return "", fmt.Errorf("reading job posting from stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			return "", fmt.Errorf("reading job posting from file %q: %w", source, err)
		}
	}

	return toText(string(data), "")
}

func (c *Client) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req = c.setHeaders(req)

	c.logger.Debug("fetching job posting", zap.String("url", rawURL))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("bad status: %s", resp.Status),
		}
	}

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", &FetchError{URL: rawURL, Message: "invalid gzip body", Cause: err}
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	data, err := io.ReadAll(io.LimitReader(reader, maxPostingBytes))
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "failed to read response body", Cause: err}
	}

	c.logger.Debug("fetched job posting",
		zap.String("url", rawURL),
		zap.Int("bytes", len(data)),
		zap.String("content_type", resp.Header.Get("Content-Type")),
	)

	return toText(string(data), resp.Header.Get("Content-Type"))
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Encoding", acceptEncoding)
	req.Header.Set("Accept", "text/html, text/plain;q=0.9, */*;q=0.8")

	return req
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func toText(body, contentType string) (string, error) {
	if isHTML(body, contentType) {
		return ExtractMainText(body)
	}
	return cleanWhitespace(body), nil
}

func isHTML(body, contentType string) bool {
	if strings.Contains(strings.ToLower(contentType), "html") {
		return true
	}
	return strings.HasPrefix(strings.TrimSpace(body), "<")
}
