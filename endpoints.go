package syndication

import (
	"net/url"
	"strconv"

	"github.com/anatolykoptev/go-syndication/token"
)

const syndicationBase = "https://cdn.syndication.twimg.com"

// DefaultEndpoint is the public tweet-result endpoint.
const DefaultEndpoint = syndicationBase + "/tweet-result"

// opTweetResult names the fetch operation in errors, logs and metrics.
const opTweetResult = "tweet-result"

// tweetResultURL returns endpoint with the id and token query parameters set.
func tweetResultURL(endpoint *url.URL, id uint64) string {
	u := *endpoint
	q := u.Query()
	q.Set("id", strconv.FormatUint(id, 10))
	q.Set("token", token.Derive(id))
	u.RawQuery = q.Encode()
	return u.String()
}
