// SPDX-License-Identifier: EPL-2.0

package store

import "io"

// Store is a random-access byte medium. It carries no format knowledge;
// container parsing lives in the formats packages.
//
// Read and Write follow io.Reader/io.Writer semantics, Seek follows
// io.Seeker, so any Store can be used as an io.ReadSeeker or
// io.WriteSeeker between Open and Close.
type Store interface {
	// Open prepares the store for access. Calling Open on an already open
	// store rewinds it to the beginning.
	Open() error
	// Close releases the underlying medium. Safe to call more than once.
	Close() error

	io.Reader
	io.Writer
	io.Seeker

	// Position reports the current byte offset.
	Position() (int64, error)
	// Size reports the total size of the medium in bytes.
	Size() (int64, error)
}
