package videos

import (
	"net/url"
	"regexp"
)

// WatchBaseURL is the canonical watch page every video id is rebuilt into.
const WatchBaseURL = "https://www.youtube.com/watch"

// videoURLPattern matches the three accepted URL shapes. The first submatch is
// the id; anything after its 11th character is ignored.
var videoURLPattern = regexp.MustCompile(`(?:youtube\.com/(?:shorts/|watch\?v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// Reference is a video id that passed extraction. The zero value is not a
// valid reference and the id cannot be set from outside this package.
type Reference struct {
	id string
}

// ExtractVideoID returns the reference embedded in a watch, shorts or
// youtu.be URL, or ErrInvalidURL.
func ExtractVideoID(raw string) (Reference, error) {
	m := videoURLPattern.FindStringSubmatch(raw)
	if len(m) != 2 {
		return Reference{}, ErrInvalidURL
	}
	return Reference{id: m[1]}, nil
}

// ID returns the 11-character video id.
func (r Reference) ID() string { return r.id }

// IsZero reports whether r was not produced by ExtractVideoID.
func (r Reference) IsZero() bool { return r.id == "" }

// WatchURL returns the canonical watch URL for the video.
func (r Reference) WatchURL() string {
	return WatchBaseURL + "?" + url.Values{"v": {r.id}}.Encode()
}

func (r Reference) String() string { return r.id }

// WatchURLFor returns the watch URL for an id taken from a previous result.
func WatchURLFor(videoID string) string {
	return Reference{id: videoID}.WatchURL()
}
