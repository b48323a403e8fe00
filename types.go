package syndication

// Tweet is the tweet record returned by the syndication endpoint.
// Field tags are the wire names; fields absent on the wire decode to zero values.
type Tweet struct {
	Lang              string  `json:"lang"`
	ConversationCount uint64  `json:"conversation_count"`
	CreatedAt         string  `json:"created_at,omitempty"`
	FavoriteCount     uint64  `json:"favorite_count"`
	IDStr             string  `json:"id_str"`
	Text              string  `json:"text"`
	PossiblySensitive *bool   `json:"possibly_sensitive,omitempty"`
	IsEdited          bool    `json:"isEdited"`
	IsStaleEdit       bool    `json:"isStaleEdit"`
	User              User    `json:"user"`
	Photos            []Photo `json:"photos,omitempty"`
	Video             *Video  `json:"video,omitempty"`
}

// HasPhotos reports whether the tweet carries at least one photo.
func (t *Tweet) HasPhotos() bool { return len(t.Photos) > 0 }

// HasVideo reports whether the tweet carries a video.
func (t *Tweet) HasVideo() bool { return t.Video != nil }

// User is the tweet author.
type User struct {
	IDStr                string `json:"id_str"`
	Name                 string `json:"name"`
	ProfileImageURLHTTPS string `json:"profile_image_url_https"`
	ProfileImageShape    string `json:"profile_image_shape,omitempty"`
	ScreenName           string `json:"screen_name"`
	Verified             bool   `json:"verified"`
	IsBlueVerified       bool   `json:"is_blue_verified"`
}

// Photo is a single attached image.
type Photo struct {
	URL    string `json:"url"`
	Width  uint64 `json:"width"`
	Height uint64 `json:"height"`
}

// Video is an attached video or animated GIF.
type Video struct {
	AspectRatio [2]uint64      `json:"aspectRatio"`
	DurationMs  uint64         `json:"durationMs"`
	Poster      string         `json:"poster"`
	Variants    []VideoVariant `json:"variants"`
}

// BestVariant returns the first variant of the given MIME type, in server order.
func (v *Video) BestVariant(mimeType string) (VideoVariant, bool) {
	for _, vv := range v.Variants {
		if vv.Type == mimeType {
			return vv, true
		}
	}
	return VideoVariant{}, false
}

// VideoVariant is one playback rendition of a video.
type VideoVariant struct {
	Type string `json:"type"`
	Src  string `json:"src"`
}

// ResultKind tells a present tweet from a tombstone.
type ResultKind int

const (
	ResultTweet     ResultKind = iota + 1
	ResultTombstone            // withdrawn or restricted; no payload
)

func (k ResultKind) String() string {
	switch k {
	case ResultTweet:
		return "Tweet"
	case ResultTombstone:
		return "TweetTombstone"
	}
	return "unknown"
}

// TweetResult is the outcome of a successful fetch.
// Tweet is non-nil exactly when Kind is ResultTweet.
type TweetResult struct {
	Kind  ResultKind
	Tweet *Tweet
}

// Found reports whether the endpoint returned a tweet rather than a tombstone.
func (r *TweetResult) Found() bool {
	return r.Kind == ResultTweet && r.Tweet != nil
}

// SchemaRevision selects the response shape the decoder expects.
type SchemaRevision int

const (
	// RevisionTagged responses carry a __typename discriminator.
	RevisionTagged SchemaRevision = iota
	// RevisionPlain responses have no discriminator and are always a tweet.
	RevisionPlain
)
