// Package aoc provides a small adventofcode.com client
// Every request carries the session cookie and a user agent naming this tool and a contact
package aoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"xaoc/internal/core/version"
	perr "xaoc/internal/platform/errors"
	"xaoc/internal/platform/logger"
)

const (
	baseURLDefault = "https://adventofcode.com"
	defaultTimeout = 30 * time.Second
	projectURL     = "https://github.com/xaoc/xaoc"
	defaultContact = projectURL + "/issues"
	maxBodyBytes   = 8 << 20
	cookieName     = "session"
)

// Options configures the Client
type Options struct {
	BaseURL string
	// UserAgent overrides the generated agent string entirely
	UserAgent string
	// Contact is an email or URL the server operator can reach the user at
	Contact string
	Timeout time.Duration
}

// Client issues authenticated requests against the puzzle server
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// UserAgent builds the agent string sent with every request
func UserAgent(contact string) string {
	if strings.TrimSpace(contact) == "" {
		contact = defaultContact
	}
	return fmt.Sprintf("xaoc/%s (+%s; contact: %s)", version.Info().Version, projectURL, strings.TrimSpace(contact))
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = UserAgent(o.Contact)
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout: o.Timeout,
			// a redirect from the puzzle server means the session was not accepted
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
		opts: o,
		log:  *logger.Named("aoc"),
		now:  time.Now,
	}
}

// BaseURL returns the server root requests are sent to
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// Get fetches path and returns the body as text
func (c *Client) Get(ctx context.Context, path, session string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+path, nil)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "aoc new request failed")
	}
	return c.do(req, path, session)
}

// PostForm posts url-encoded fields to path and returns the body as text
func (c *Client) PostForm(ctx context.Context, path, session string, fields url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+path, strings.NewReader(fields.Encode()))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "aoc new request failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, path, session)
}

func (c *Client) do(req *http.Request, path, session string) (string, error) {
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: session})

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return "", perr.Wrapf(redact(err, session), perr.ErrorCodeTransport, "%s %s failed", req.Method, path)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("aoc close body failed")
		}
	}()

	body, rerr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))

	c.log.Debug().
		Str("method", req.Method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("bytes", len(body)).
		Msg("aoc http response")

	if err := statusError(req.Method, path, resp.StatusCode); err != nil {
		return "", err
	}
	if rerr != nil {
		return "", perr.Wrapf(redact(rerr, session), perr.ErrorCodeTransport, "%s %s: read body", req.Method, path)
	}
	if len(body) > maxBodyBytes {
		return "", perr.Transportf("%s %s: response body exceeds %d bytes", req.Method, path, maxBodyBytes)
	}
	return string(body), nil
}
