package syndication

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	typenameTweet     = "Tweet"
	typenameTombstone = "TweetTombstone"
)

// DecodeTweetResult maps a tweet-result response body to a TweetResult.
// With RevisionTagged the __typename field selects the shape; with RevisionPlain
// the body is always a tweet.
func DecodeTweetResult(body []byte, rev SchemaRevision) (*TweetResult, error) {
	if rev == RevisionPlain {
		t, err := decodeTweet(body)
		if err != nil {
			return nil, err
		}
		return &TweetResult{Kind: ResultTweet, Tweet: t}, nil
	}

	var env struct {
		TypeName *string `json:"__typename"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Reason: "invalid json", Err: err}
	}
	if env.TypeName == nil {
		return nil, &DecodeError{Reason: "__typename absent", Err: ErrUnknownTypename}
	}

	switch *env.TypeName {
	case typenameTweet:
		t, err := decodeTweet(body)
		if err != nil {
			return nil, err
		}
		return &TweetResult{Kind: ResultTweet, Tweet: t}, nil
	case typenameTombstone:
		return &TweetResult{Kind: ResultTombstone}, nil
	default:
		return nil, &DecodeError{Reason: fmt.Sprintf("__typename %q", *env.TypeName), Err: ErrUnknownTypename}
	}
}

// rawObject keeps the raw members of a JSON object so required fields can be
// checked by exact key. Tweet itself can not tell absent from empty, and
// encoding/json matches keys case-insensitively.
type rawObject map[string]json.RawMessage

// has reports whether key is present with a non-null value.
func (o rawObject) has(key string) bool {
	v, ok := o[key]
	return ok && !bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// requireFields returns a missing-field error for the first absent key.
func (o rawObject) requireFields(prefix string, keys ...string) error {
	for _, k := range keys {
		if !o.has(k) {
			return missingField(prefix + k)
		}
	}
	return nil
}

func decodeTweet(body []byte) (*Tweet, error) {
	var top rawObject
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, &DecodeError{Reason: "invalid json", Err: err}
	}
	if err := top.requireFields("", "id_str", "text", "user"); err != nil {
		return nil, err
	}

	var user rawObject
	if err := json.Unmarshal(top["user"], &user); err != nil {
		return nil, &DecodeError{Reason: "invalid user", Err: err}
	}
	if err := user.requireFields("user.", "id_str", "screen_name"); err != nil {
		return nil, err
	}

	if top.has("photos") {
		var photos []rawObject
		if err := json.Unmarshal(top["photos"], &photos); err != nil {
			return nil, &DecodeError{Reason: "invalid photos", Err: err}
		}
		for i, ph := range photos {
			if err := ph.requireFields(fmt.Sprintf("photos[%d].", i), "url", "width", "height"); err != nil {
				return nil, err
			}
		}
	}

	var t Tweet
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, &DecodeError{Reason: "unmarshal tweet", Err: err}
	}
	// The server omits empty arrays.
	if t.Photos == nil {
		t.Photos = []Photo{}
	}
	return &t, nil
}

// EncodeTweet renders t in the wire shape of the given schema revision.
func EncodeTweet(t *Tweet, rev SchemaRevision) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("encode tweet: nil tweet")
	}
	if rev == RevisionPlain {
		return json.Marshal(t)
	}
	return json.Marshal(struct {
		TypeName string `json:"__typename"`
		*Tweet
	}{typenameTweet, t})
}

// EncodeTombstone renders a tombstone response body.
func EncodeTombstone() []byte {
	return []byte(`{"__typename":"` + typenameTombstone + `"}`)
}

// ParseTweetID extracts a tweet ID from a decimal string or a status URL
// such as https://x.com/user/status/1079631553641164802.
func ParseTweetID(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		u, err := url.Parse(s)
		if err != nil {
			return 0, fmt.Errorf("parse tweet url: %w", err)
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		s = ""
		for i := 0; i+1 < len(parts); i++ {
			if parts[i] == "status" || parts[i] == "statuses" {
				s = parts[i+1]
				break
			}
		}
		if s == "" {
			return 0, fmt.Errorf("no status id in %q", u.Path)
		}
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse tweet id: %w", err)
	}
	return id, nil
}
