package driver

import "errors"

// ErrNilSink indicates a driver was built without a sample sink.
var ErrNilSink = errors.New("sink must not be nil")
