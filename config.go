package syndication

import (
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
)

// ClientConfig holds all configuration for the syndication client.
type ClientConfig struct {
	// Endpoint is the tweet-result URL. Default: DefaultEndpoint.
	Endpoint string

	// Timeout bounds each fetch, including reading the body. The default
	// transport gets it rounded up to whole seconds. Default: 10s.
	Timeout time.Duration

	// UserAgent is sent on every request. The endpoint rejects agents that
	// do not look like a desktop browser. Default: Firefox 122 on Linux.
	UserAgent string

	// Revision selects the response schema to decode. Default: RevisionTagged.
	Revision SchemaRevision

	// Proxy is an optional proxy URL for the default transport.
	Proxy string

	// HTTPClient overrides the default stealth transport.
	HTTPClient Doer

	// TransportOptions are appended to the default transport's options,
	// e.g. stealth.WithStdHTTP(). Ignored when HTTPClient is set.
	TransportOptions []stealth.ClientOption

	// MetricsHook is called once per fetch for external metrics collection.
	// op is the operation name, success reports whether a result was returned.
	MetricsHook func(op string, success bool)
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *ClientConfig) defaults() {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
}
