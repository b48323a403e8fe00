package syndication

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
)

// Doer performs a single HTTP exchange and returns the body, response
// headers and status. It must return ctx.Err() once ctx is done.
// *stealth.BrowserClient satisfies it.
type Doer interface {
	DoWithHeaderOrderCtx(ctx context.Context, method, url string, headers map[string]string, body io.Reader, order []string) ([]byte, map[string]string, int, error)
}

var _ Doer = (*stealth.BrowserClient)(nil)

// Client fetches tweets from the syndication endpoint.
// It is safe for concurrent use; nothing is mutated after NewClient.
type Client struct {
	http     Doer
	endpoint *url.URL
	headers  map[string]string
	cfg      ClientConfig
}

// NewClient creates a syndication client.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg.defaults()

	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("endpoint %q is not absolute", cfg.Endpoint)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		if cfg.Proxy != "" {
			slog.Info("syndication: using proxy", slog.String("proxy", stealth.MaskProxy(cfg.Proxy)))
		}
		bc, err := stealth.NewClient(transportOptions(cfg)...)
		if err != nil {
			return nil, fmt.Errorf("stealth client: %w", err)
		}
		hc = bc
	}

	return &Client{
		http:     hc,
		endpoint: endpoint,
		headers:  syndicationHeaders(cfg.UserAgent),
		cfg:      cfg,
	}, nil
}

// transportOptions builds the stealth options for the default transport.
// The transport timeout is the fetch timeout rounded up to whole seconds, so
// a timed-out request is also torn down on the wire.
func transportOptions(cfg ClientConfig) []stealth.ClientOption {
	opts := []stealth.ClientOption{
		stealth.WithHeaderOrder(syndicationHeaderOrder),
		stealth.WithTimeout(timeoutSeconds(cfg.Timeout)),
	}
	if cfg.Proxy != "" {
		opts = append(opts, stealth.WithProxy(cfg.Proxy))
	}
	return append(opts, cfg.TransportOptions...)
}

// timeoutSeconds converts d to whole seconds, rounding up, minimum 1.
func timeoutSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	return max(secs, 1)
}

// FetchTweet fetches one tweet by ID. A nil error means the result is either
// a tweet or a tombstone; failures are *TransportError or *DecodeError.
//
// The endpoint does not reliably tell a never-existing ID from a withdrawn
// one: either may come back as a tombstone or as an HTTP error.
func (c *Client) FetchTweet(ctx context.Context, id uint64) (*TweetResult, error) {
	body, err := c.doGET(ctx, tweetResultURL(c.endpoint, id))
	if err != nil {
		c.recordFetch(false)
		return nil, fmt.Errorf("tweet %d: %w", id, err)
	}

	res, err := DecodeTweetResult(body, c.cfg.Revision)
	if err != nil {
		c.recordFetch(false)
		slog.Debug("tweet-result decode failed", slog.Uint64("tweet_id", id), slog.String("body", truncateBytes(body, 200)))
		return nil, fmt.Errorf("tweet %d: %w", id, err)
	}

	c.recordFetch(true)
	slog.Debug("tweet-result fetched", slog.Uint64("tweet_id", id), slog.String("kind", res.Kind.String()))
	return res, nil
}

// recordFetch calls the metrics hook if configured.
func (c *Client) recordFetch(success bool) {
	if c.cfg.MetricsHook != nil {
		c.cfg.MetricsHook(opTweetResult, success)
	}
}
