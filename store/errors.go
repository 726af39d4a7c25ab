// SPDX-License-Identifier: EPL-2.0

package store

import "errors"

var (
	ErrNotOpen  = errors.New("store is not open")
	ErrReadOnly = errors.New("store is read-only")
	ErrBadSeek  = errors.New("seek to negative offset")
)
