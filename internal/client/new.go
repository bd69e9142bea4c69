package client

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/friendsofgo/errors"

	"printduka-admin/internal/cache"
	"printduka-admin/pkg/log"
)

// Config holds the Resource Client configuration. BaseURL is the single
// externally visible knob of this layer and comes from the environment.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	UserAgent      string
	CSRFCookieName string
	CSRFHeaderName string
}

// DefaultConfig returns the default client config.
func DefaultConfig() Config {
	return Config{
		Timeout:        DefaultTimeout,
		UserAgent:      UserAgent,
		CSRFCookieName: CSRFCookieName,
		CSRFHeaderName: CSRFHeaderName,
	}
}

// Client executes reads and writes against the Print Duka backend,
// normalizes response envelopes and classifies failures. Requests carry
// the session cookie; mutations carry the CSRF header.
type Client struct {
	l     log.Logger
	cfg   Config
	http  *http.Client
	base  *url.URL
	cache cache.Cache
}

// Option customizes a Client.
type Option func(*Client)

// WithCache attaches a shared read cache. Reads are then de-duplicated
// and served by query key; successful mutations invalidate the owning
// resource family.
func WithCache(c cache.Cache) Option {
	return func(cl *Client) { cl.cache = c }
}

// WithHTTPClient swaps the underlying HTTP client. A cookie jar is
// installed if the replacement has none, since session auth depends on it.
func WithHTTPClient(h *http.Client) Option {
	return func(cl *Client) { cl.http = h }
}

// New creates a Client for the backend at cfg.BaseURL.
func New(l log.Logger, cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("client: base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "client: parse base URL")
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Errorf("client: unsupported scheme %q", base.Scheme)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = UserAgent
	}
	if cfg.CSRFCookieName == "" {
		cfg.CSRFCookieName = CSRFCookieName
	}
	if cfg.CSRFHeaderName == "" {
		cfg.CSRFHeaderName = CSRFHeaderName
	}

	cl := &Client{
		l:    l,
		cfg:  cfg,
		base: base,
	}
	for _, opt := range opts {
		opt(cl)
	}

	if cl.http == nil {
		cl.http = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		}
	}
	if cl.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, errors.Wrap(err, "client: cookie jar")
		}
		cl.http.Jar = jar
	}

	return cl, nil
}

// Close closes idle connections in the HTTP client.
func (c *Client) Close() error {
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}
