package syndication

import stealth "github.com/anatolykoptev/go-stealth"

// defaultUserAgent is the desktop browser User-Agent the endpoint accepts.
const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:122.0) Gecko/20100101 Firefox/122.0"

// syndicationHeaders returns the request headers for tweet-result.
// Chromium agents also get matching client hints; Firefox sends none.
func syndicationHeaders(userAgent string) map[string]string {
	h := map[string]string{
		"accept":     "*/*",
		"user-agent": userAgent,
	}
	if ch := stealth.ClientHintsHeaders(userAgent); ch != nil {
		for k, v := range ch {
			h[k] = v
		}
	}
	return h
}

// syndicationHeaderOrder is the header order for TLS fingerprint consistency.
var syndicationHeaderOrder = []string{
	"sec-ch-ua",
	"sec-ch-ua-mobile",
	"sec-ch-ua-platform",
	"user-agent",
	"accept",
	"accept-language",
	"accept-encoding",
}
