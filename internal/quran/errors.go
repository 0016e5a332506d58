package quran

import "errors"

var (
	// ErrSourceUnavailable covers network failures, timeouts, and
	// non-success HTTP statuses from the scripture source.
	ErrSourceUnavailable = errors.New("scripture source unavailable")

	// ErrMalformedResponse covers payloads that decode but are missing the
	// fields the adapter needs.
	ErrMalformedResponse = errors.New("malformed scripture source response")
)
