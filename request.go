package syndication

import (
	"context"
	"errors"
	"log/slog"
	"maps"
)

// doGET performs one GET bounded by the configured timeout. Non-2xx statuses
// are returned as *TransportError without looking at the body as JSON.
func (c *Client) doGET(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, _, status, err := c.http.DoWithHeaderOrderCtx(ctx, "GET", url, maps.Clone(c.headers), nil, syndicationHeaderOrder)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = errors.Join(ctxErr, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			slog.Warn("tweet-result timed out", slog.Duration("timeout", c.cfg.Timeout), slog.Any("error", err))
		}
		return nil, &TransportError{Op: opTweetResult, Err: err}
	}
	if status < 200 || status > 299 {
		slog.Warn("tweet-result non-2xx", slog.Int("status", status), slog.String("body", truncateBytes(body, 500)))
		return nil, &TransportError{Op: opTweetResult, StatusCode: status, Body: truncateBytes(body, 200)}
	}
	return body, nil
}
