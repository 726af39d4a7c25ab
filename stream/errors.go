// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	ErrBadFile       = errors.New("source could not be opened or parsed")
	ErrBadSampleSize = errors.New("source bit depth does not match 16-bit samples")
	ErrNotLoaded     = errors.New("no stream loaded")
	ErrBadBlockSize  = errors.New("block size must be a positive multiple of the sample size")
	ErrBadNumBlocks  = errors.New("ring cache needs at least one block")
)
