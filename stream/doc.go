// SPDX-License-Identifier: EPL-2.0

// Package stream implements the sample cache engine: a fixed-capacity,
// two-tier buffer that streams decoded PCM from a random-access store into a
// real-time consumer without blocking it and without holding the whole file
// in memory.
//
// # The two tiers
//
// The engine keeps a "P-buffer": a contiguous intro buffer holding the first
// samples of the stream, plus a block-indexed ring cache covering the rest.
//
//   - The intro buffer is loaded once at Load time. Its length is chosen so
//     the byte offset of the first sample after it lands on a cache-block
//     boundary in the file, which makes every later block lookup a pure
//     divide/modulo.
//   - The ring cache is NumBlocks slots of SamplesPerBlock samples each. A
//     block map records which logical block (if any) each slot holds.
//
// All buffers are sized by NewSampler; nothing allocates during playback.
//
// # Two call paths
//
// ReadSamples is the consumer path. It never touches storage, never blocks,
// and does only bounded arithmetic and copies, so it is safe to call from a
// fixed-period render callback. When the next needed block is not resident
// it returns a short count; that short count is the backpressure signal.
//
// Prime is the producer path. Each call fetches at most one missing block
// from the loader, picking the block nearest the read head that is not yet
// resident and writing it into the slot whose current block is farthest from
// the read head. Prime may block on storage and must be driven from a
// context where that is acceptable (see the driver package).
//
// # Concurrency contract
//
// One goroutine calls ReadSamples (and the position-setting operations Seek
// and Reset); one other goroutine may call Prime concurrently. The block map
// entries are atomics published only after a slot's payload is fully
// written, so the consumer never observes a partially filled block. There is
// no lock on either path.
//
// # Errors
//
// Load reports ErrBadFile when the source cannot be opened or parsed and
// ErrBadSampleSize when the source bit depth does not match the engine's
// 16-bit samples. ReadSamples and Prime never return errors: a missing block
// is a short read count, a failed fetch is a false return.
package stream
