package widget

import "errors"

var (
	// ErrEmptyInput is returned for blank submits; nothing is requested or changed.
	ErrEmptyInput = errors.New("empty city")
	// ErrRequest covers transport errors and non-2xx responses.
	ErrRequest = errors.New("request failed")
	// ErrParse is returned when a response body is not the expected JSON.
	ErrParse = errors.New("malformed response")
	// ErrStale is returned when a newer submit superseded this one.
	ErrStale = errors.New("superseded by a newer search")
)
