package audsampler

import "errors"

var (
	// ErrUnknownFormat indicates no opener is registered for the format.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrStalled indicates the cache stopped making progress before the
	// end of the stream.
	ErrStalled = errors.New("stream stalled before EOF")
)
