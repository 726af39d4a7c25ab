package wav

import "errors"

var (
	ErrNotWavFile  = errors.New("not a WAV file")
	ErrNoPCMData   = errors.New("WAV file has no PCM data chunk")
	ErrBadBitDepth = errors.New("bit depth is not a whole number of bytes")
	ErrNotOpen     = errors.New("loader is not open")
)
