// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/idxctl/idxctl/internal/log"
	"github.com/idxctl/idxctl/internal/version"
)

const (
	DefaultHost    = "localhost"
	DefaultPort    = 9200
	DefaultTimeout = 30 * time.Second
	DefaultRetries = 3

	// settingsPath lists open and closed indices while keeping the response
	// down to the index names.
	settingsPath = "/_all/_settings?expand_wildcards=open,closed&filter_path=*.settings.index.provided_name"

	// maxErrorBody caps how much of an error response is quoted back.
	maxErrorBody = 512
)

// Client lists indices from a cluster.
type Client struct {
	Host      string
	Port      int
	URLPrefix string
	UseSSL    bool
	Insecure  bool
	Timeout   time.Duration
	Retries   int

	username string
	password string

	// wrap, when set, decorates the pooled transport (e.g. SigV4 signing).
	wrap func(http.RoundTripper) (http.RoundTripper, error)

	http *retryablehttp.Client
}

// Option configures a Client. Options are applied in order after the
// defaults.
type Option = func(c *Client) error

// NewClient builds a Client from opts.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{}

	opts = append([]Option{WithDefaults()}, opts...)
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	hc, err := c.httpClient()
	if err != nil {
		return nil, err
	}
	c.http = hc

	log.WithField("endpoint", c.Endpoint()).Debug("cluster client ready")
	return c, nil
}

// WithDefaults sets localhost:9200 over plain HTTP.
func WithDefaults() Option {
	return func(c *Client) error {
		c.Host = DefaultHost
		c.Port = DefaultPort
		c.Timeout = DefaultTimeout
		c.Retries = DefaultRetries
		return nil
	}
}

// WithHost sets the host. A host given as a URL ("https://es.example.com")
// also sets the scheme.
func WithHost(host string) Option {
	return func(c *Client) error {
		switch {
		case host == "":
			return nil
		case strings.HasPrefix(host, "https://"):
			c.UseSSL = true
			host = strings.TrimPrefix(host, "https://")
		case strings.HasPrefix(host, "http://"):
			host = strings.TrimPrefix(host, "http://")
		}
		c.Host = strings.TrimSuffix(host, "/")
		return nil
	}
}

// WithPort sets the port.
func WithPort(port int) Option {
	return func(c *Client) error {
		if port < 1 || port > 65535 {
			return fmt.Errorf("port %d out of range", port)
		}
		c.Port = port
		return nil
	}
}

// WithURLPrefix mounts every request below prefix, for clusters behind a
// path-routing proxy.
func WithURLPrefix(prefix string) Option {
	return func(c *Client) error {
		prefix = strings.Trim(prefix, "/")
		if prefix != "" {
			prefix = "/" + prefix
		}
		c.URLPrefix = prefix
		return nil
	}
}

// WithSSL selects https. insecure skips certificate verification.
func WithSSL(useSSL, insecure bool) Option {
	return func(c *Client) error {
		c.UseSSL = c.UseSSL || useSSL
		c.Insecure = insecure
		return nil
	}
}

// WithBasicAuth sets credentials from a "user:password" pair.
func WithBasicAuth(pair string) Option {
	return func(c *Client) error {
		if pair == "" {
			return nil
		}
		user, pass, ok := strings.Cut(pair, ":")
		if !ok || user == "" {
			return fmt.Errorf("--http-auth must be user:password")
		}
		c.username, c.password = user, pass
		return nil
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		c.Timeout = d
		return nil
	}
}

// WithRetries sets how many times a failed request is retried.
func WithRetries(n int) Option {
	return func(c *Client) error {
		if n < 0 {
			return fmt.Errorf("retries must not be negative, got %d", n)
		}
		c.Retries = n
		return nil
	}
}

// WithTransport decorates the underlying transport. It is how request
// signing is plugged in.
func WithTransport(wrap func(http.RoundTripper) (http.RoundTripper, error)) Option {
	return func(c *Client) error {
		c.wrap = wrap
		return nil
	}
}

// Endpoint is the base URL requests are made against.
func (c *Client) Endpoint() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + net.JoinHostPort(c.Host, strconv.Itoa(c.Port)) + c.URLPrefix
}

// ListIndices returns the sorted names of every open and closed index.
func (c *Client) ListIndices(ctx context.Context) ([]string, error) {
	ec := ErrorContext{Endpoint: c.Endpoint(), Operation: "list indices"}

	body, err := c.get(ctx, settingsPath)
	if err != nil {
		return nil, Friendly(err, ec)
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, Friendly(fmt.Errorf("response is not a JSON object"), ec)
	}

	var names []string
	doc.ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())
		return true
	})
	slices.Sort(names)

	log.Debugf("cluster reports %d indices", len(names))
	log.Tracef("indices: %v", names)
	return names, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint()+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	log.Debugf("GET %s", req.URL.Redacted())
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody] + "..."
		}
		return nil, &StatusError{Code: resp.StatusCode, Body: snippet}
	}

	return body, nil
}

func (c *Client) httpClient() (*retryablehttp.Client, error) {
	transport := cleanhttp.DefaultPooledTransport()
	if c.Insecure {
		//nolint:gosec
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var rt http.RoundTripper = transport
	if c.wrap != nil {
		wrapped, err := c.wrap(rt)
		if err != nil {
			return nil, err
		}
		rt = wrapped
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: rt, Timeout: c.Timeout}
	rc.RetryMax = c.Retries
	rc.RetryWaitMin = 250 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.Logger = leveledLogger{}
	// Hand the final response back so the status can be reported.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return rc, nil
}

// leveledLogger routes retryablehttp's logging through the app logger.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, kv ...interface{}) { log.Errorf("%s %s", msg, pairs(kv)) }
func (leveledLogger) Warn(msg string, kv ...interface{})  { log.Warnf("%s %s", msg, pairs(kv)) }
func (leveledLogger) Info(msg string, kv ...interface{})  { log.Debugf("%s %s", msg, pairs(kv)) }
func (leveledLogger) Debug(msg string, kv ...interface{}) { log.Tracef("%s %s", msg, pairs(kv)) }

func pairs(kv []interface{}) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v=%v", kv[i], kv[i+1])
	}
	return b.String()
}
