// SPDX-License-Identifier: EPL-2.0

// Package store provides the byte-store abstraction used by the container
// loaders and the sample cache engine.
//
// A Store is a random-access byte medium with standard file semantics and no
// knowledge of any audio container format. The capability set is
// open/close/read/write/seek/position/size, so a Store satisfies
// io.ReadSeeker and io.WriteSeeker and can be handed directly to stream
// decoders and encoders.
//
// # Implementations
//
// Three backends are provided:
//
//   - File: a posix file opened with os.OpenFile. Use NewFile for read-only
//     access and CreateFile when writing a new store.
//   - Memory: an in-memory byte slice that grows on write. Used by the
//     format transcoders and by tests.
//   - Mmap: a read-only memory-mapped file (unix only). Reads are plain
//     memory copies, which keeps the prefetch path cheap for media that is
//     already in the page cache.
//
// # Usage
//
//	st := store.NewFile("audio.wav")
//	if err := st.Open(); err != nil {
//	    // handle error
//	}
//	defer st.Close()
//
//	buf := make([]byte, 4096)
//	n, err := st.Read(buf)
//
// # Ownership
//
// A Store does not own the media lifecycle of its consumers: a loader or
// sampler bound to a Store expects the Store to stay open for the whole
// session. Close is idempotent.
package store
