package models

// VideoMetadataResult is the response returned for a successfully resolved video.
type VideoMetadataResult struct {
	Title        string             `json:"title"`
	Author       string             `json:"author"`
	Duration     string             `json:"duration"`
	Thumbnail    string             `json:"thumbnail"`
	VideoID      string             `json:"videoId"`
	Formats      []FormatDescriptor `json:"formats"`
	Instructions []string           `json:"instructions"`
}

// FormatDescriptor describes a downloadable rendition of a video.
//
// Formats are never enumerated from real streams. The single entry returned
// today has Placeholder set so callers can tell it apart from a real listing.
type FormatDescriptor struct {
	Quality     string `json:"quality"`
	Container   string `json:"container"`
	HasVideo    bool   `json:"hasVideo"`
	HasAudio    bool   `json:"hasAudio"`
	URL         string `json:"url"`
	Note        string `json:"note"`
	Placeholder bool   `json:"placeholder"`
}

// ErrorKind classifies a failed lookup.
type ErrorKind string

const (
	ErrorKindMissingInput      ErrorKind = "missing_input"
	ErrorKindInvalidURL        ErrorKind = "invalid_url"
	ErrorKindFetchFailed       ErrorKind = "fetch_failed"
	ErrorKindUnexpectedFailure ErrorKind = "unexpected_failure"
)

// ErrorResult is the response returned when a lookup fails.
type ErrorResult struct {
	Error        string    `json:"error"`
	Kind         ErrorKind `json:"kind,omitempty"`
	VideoID      string    `json:"videoId,omitempty"`
	Instructions []string  `json:"instructions,omitempty"`
}

// UnknownDuration is reported because the metadata provider has no duration field.
const UnknownDuration = "N/A"
