package syndication

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTypename is wrapped by DecodeError when __typename is absent or unrecognised.
	ErrUnknownTypename = errors.New("unknown __typename")
	// ErrMissingField is wrapped by DecodeError when a required field is absent.
	ErrMissingField = errors.New("missing required field")
)

// TransportError reports a failed round trip: connection failure, timeout,
// cancellation or a non-2xx status. StatusCode is 0 when no response arrived.
type TransportError struct {
	Op         string
	StatusCode int
	Body       string // truncated response body, non-2xx only
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that could not be mapped to a TweetResult.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode tweet-result: %s: %v", e.Reason, e.Err)
	}
	return "decode tweet-result: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

func missingField(name string) error {
	return &DecodeError{Reason: name, Err: ErrMissingField}
}

// IsTransport reports whether err is, or wraps, a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecode reports whether err is, or wraps, a DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

func truncateBytes(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
