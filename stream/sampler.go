// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ik5/audsampler/store"
)

const (
	// DefaultBlockBytes is the byte size of one cache block.
	DefaultBlockBytes = 4096
	// DefaultNumBlocks is the number of slots in the ring cache.
	DefaultNumBlocks = 3

	bytesPerSample = 2 // the engine is compiled for int16 PCM
)

// unmappedBlock marks a ring slot that holds no usable block. The value is
// maximally distant from any real block index, so an unfilled slot always
// wins the eviction-distance comparison.
const unmappedBlock = int64(math.MaxInt64)

// Config sizes the cache. All buffers are allocated once by NewSampler.
type Config struct {
	// BlockBytes is the size of one cache block in bytes. Must be a
	// positive multiple of the sample size.
	BlockBytes int
	// NumBlocks is the number of ring cache slots.
	NumBlocks int
}

// DefaultConfig returns the stock 3-slot, 4 KiB-block configuration.
func DefaultConfig() Config {
	return Config{BlockBytes: DefaultBlockBytes, NumBlocks: DefaultNumBlocks}
}

// Sampler streams 16-bit PCM from a Loader through a fixed two-tier cache.
// See the package documentation for the buffer layout and the concurrency
// contract.
type Sampler struct {
	cfg             Config
	samplesPerBlock uint32

	loader Loader
	loaded bool

	totalSamples uint32
	fileBlocks   int64 // cache blocks past the intro buffer

	introBuf  []int16
	introSize uint32

	ringBuf  []int16
	blockMap []atomic.Int64

	pos atomic.Uint32

	fetchBuf []byte // staging for loader byte reads; intro load needs 2 blocks
}

// NewSampler allocates a sampler for the given cache geometry.
func NewSampler(cfg Config) (*Sampler, error) {
	if cfg.BlockBytes <= 0 || cfg.BlockBytes%bytesPerSample != 0 {
		return nil, ErrBadBlockSize
	}
	if cfg.NumBlocks <= 0 {
		return nil, ErrBadNumBlocks
	}

	spb := uint32(cfg.BlockBytes / bytesPerSample)

	return &Sampler{
		cfg:             cfg,
		samplesPerBlock: spb,
		introBuf:        make([]int16, 2*spb),
		ringBuf:         make([]int16, cfg.NumBlocks*int(spb)),
		blockMap:        make([]atomic.Int64, cfg.NumBlocks),
		fetchBuf:        make([]byte, 2*cfg.BlockBytes),
	}, nil
}

// Load binds the sampler to a loader over a byte store, validates the sample
// format, fills the intro buffer and clears the ring cache. On failure the
// sampler stays unusable until a later Load succeeds.
func (s *Sampler) Load(l Loader, st store.Store) error {
	s.Unload()

	if l == nil || st == nil {
		return ErrBadFile
	}
	if err := l.Open(st); err != nil {
		return fmt.Errorf("%w: %w", ErrBadFile, err)
	}
	if l.BitsPerSample() != bytesPerSample*8 {
		l.Close()
		return fmt.Errorf("%w: source is %d-bit", ErrBadSampleSize, l.BitsPerSample())
	}

	s.loader = l
	s.totalSamples = l.NumSamples()

	if err := s.loadIntroBuffer(); err != nil {
		s.loader = nil
		l.Close()
		return err
	}

	var rest uint32
	if s.totalSamples > s.introSize {
		rest = s.totalSamples - s.introSize
	}
	s.fileBlocks = int64((rest + s.samplesPerBlock - 1) / s.samplesPerBlock)

	for i := range s.blockMap {
		s.blockMap[i].Store(unmappedBlock)
	}
	s.pos.Store(0)
	s.loaded = true

	return nil
}

// loadIntroBuffer fills the intro buffer so that the byte offset of the
// first sample after it is block-aligned in the file. With an already
// aligned sample region the intro simply takes its full two-block capacity.
func (s *Sampler) loadIntroBuffer() error {
	if !s.loader.Seek(0) {
		return ErrBadFile
	}

	fileOffset := s.loader.FilePositionForSample(0)
	blockBytes := int64(s.cfg.BlockBytes)

	var introBytes int64
	switch {
	case fileOffset < blockBytes:
		introBytes = (blockBytes - fileOffset) + blockBytes
	case fileOffset%blockBytes != 0:
		introBytes = (fileOffset/blockBytes+1)*blockBytes - fileOffset + blockBytes
	default:
		introBytes = int64(len(s.introBuf)) * bytesPerSample
	}
	if limit := int64(len(s.introBuf)) * bytesPerSample; introBytes > limit {
		introBytes = limit
	}

	n, err := s.loader.Read(s.fetchBuf[:introBytes])
	if n <= 0 {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBadFile, err)
		}
		return ErrBadFile
	}

	s.introSize = uint32(n / bytesPerSample)
	for i := uint32(0); i < s.introSize; i++ {
		s.introBuf[i] = int16(binary.LittleEndian.Uint16(s.fetchBuf[i*bytesPerSample:]))
	}

	return nil
}

// ReadSamples copies up to len(dst) samples from the current position into
// dst and advances the position by the amount copied. It performs no I/O and
// never blocks: when the next needed block is not resident it stops and
// returns the short count.
func (s *Sampler) ReadSamples(dst []int16) int {
	if !s.loaded || len(dst) == 0 {
		return 0
	}

	pos := s.pos.Load()
	want := uint32(len(dst))
	if left := s.totalSamples - pos; want > left {
		want = left
	}

	var copied uint32

	// Intro fast path: no block lookup needed.
	if pos < s.introSize && copied < want {
		n := want
		if left := s.introSize - pos; n > left {
			n = left
		}
		copy(dst[:n], s.introBuf[pos:pos+n])
		pos += n
		copied = n
	}

	// Ring cache path; a single request may span several resident blocks.
	for copied < want {
		rel := pos - s.introSize
		block := int64(rel / s.samplesPerBlock)
		offset := rel % s.samplesPerBlock

		slot := -1
		for i := range s.blockMap {
			if s.blockMap[i].Load() == block {
				slot = i
				break
			}
		}
		if slot < 0 {
			break // backpressure: cache has not caught up yet
		}

		n := want - copied
		if left := s.samplesPerBlock - offset; n > left {
			n = left
		}
		base := uint32(slot)*s.samplesPerBlock + offset
		copy(dst[copied:copied+n], s.ringBuf[base:base+n])
		pos += n
		copied += n
	}

	s.pos.Store(pos)

	return int(copied)
}

// Prime fetches at most one missing block from the loader into the ring
// cache and reports whether a slot was updated. It may block on storage and
// must not be called from the same context as ReadSamples.
func (s *Sampler) Prime() bool {
	if !s.loaded || s.fileBlocks == 0 {
		return false
	}

	// Snapshot the read head; a concurrent seek does not retarget an
	// in-flight fetch.
	pos := s.pos.Load()
	var headBlock int64
	if pos >= s.introSize {
		headBlock = int64((pos - s.introSize) / s.samplesPerBlock)
	}

	// Farthest-from-head slot is the eviction candidate; unmapped slots
	// always win until the ring has been filled once.
	evict := 0
	maxDiff := blockDistance(s.blockMap[0].Load(), headBlock)
	for i := 1; i < len(s.blockMap); i++ {
		if d := blockDistance(s.blockMap[i].Load(), headBlock); d > maxDiff {
			evict, maxDiff = i, d
		}
	}
	if maxDiff == 0 {
		return false // every slot already holds the block closest it could
	}

	// No candidate can lie outside [0, fileBlocks), so cap the scan there
	// instead of walking distances the sentinel inflates.
	limit := maxDiff
	if far := max(headBlock, s.fileBlocks-1-headBlock) + 1; limit > far {
		limit = far
	}

	for absDiff := int64(0); absDiff < limit; absDiff++ {
		offset := absDiff
		for sign := 0; sign < 2; offset, sign = -offset, sign+1 {
			candidate := headBlock + offset
			if candidate < 0 || candidate >= s.fileBlocks {
				continue
			}
			if s.resident(candidate) {
				continue
			}
			return s.fetchBlock(candidate, evict)
		}
	}

	return false
}

// resident reports whether a block is mapped in any slot, preserving the
// no-duplicate-residency invariant.
func (s *Sampler) resident(block int64) bool {
	for i := range s.blockMap {
		if s.blockMap[i].Load() == block {
			return true
		}
	}
	return false
}

// fetchBlock reads one block into the staging buffer, then republishes the
// slot: invalidate, copy payload, publish. The map entry is stored only
// after the slot bytes are fully written, so a concurrent ReadSamples never
// sees a partial block. A short or failed read leaves the previous mapping
// in place and reports no fetch.
func (s *Sampler) fetchBlock(block int64, slot int) bool {
	first := s.introSize + uint32(block)*s.samplesPerBlock
	if !s.loader.Seek(first) {
		return false
	}

	// The final block of the stream may be shorter than a full block.
	want := s.cfg.BlockBytes
	if rest := int64(s.totalSamples-first) * bytesPerSample; rest < int64(want) {
		want = int(rest)
	}
	if want <= 0 {
		return false
	}

	n, err := s.loader.Read(s.fetchBuf[:want])
	if n < want {
		_ = err // short read: no progress this attempt, retried by a later Prime
		return false
	}

	s.blockMap[slot].Store(unmappedBlock)
	base := slot * int(s.samplesPerBlock)
	for i := 0; i < want/bytesPerSample; i++ {
		s.ringBuf[base+i] = int16(binary.LittleEndian.Uint16(s.fetchBuf[i*bytesPerSample:]))
	}
	s.blockMap[slot].Store(block)

	return true
}

func blockDistance(mapped, head int64) int64 {
	if mapped == unmappedBlock {
		return math.MaxInt64
	}
	if mapped >= head {
		return mapped - head
	}
	return head - mapped
}

// Unload closes the bound loader and returns the sampler to the unloaded
// state. Safe to call on an unloaded sampler.
func (s *Sampler) Unload() {
	if s.loader != nil {
		s.loader.Close()
		s.loader = nil
	}
	s.loaded = false
	s.totalSamples = 0
	s.fileBlocks = 0
	s.introSize = 0
	s.pos.Store(0)
}

// Seek sets the stream position, clamped to [0, NumSamples]. Buffer contents
// are untouched; a far seek simply makes the next Prime calls fetch the new
// neighborhood.
func (s *Sampler) Seek(sample uint32) {
	if !s.loaded {
		return
	}
	if sample > s.totalSamples {
		sample = s.totalSamples
	}
	s.pos.Store(sample)
}

// Reset rewinds to sample 0.
func (s *Sampler) Reset() { s.Seek(0) }

// Position reports the current stream position in samples.
func (s *Sampler) Position() uint32 { return s.pos.Load() }

// AtEOF reports whether the position has reached the end of the stream.
func (s *Sampler) AtEOF() bool { return s.pos.Load() >= s.totalSamples }

// Loaded reports whether a stream is bound and usable.
func (s *Sampler) Loaded() bool { return s.loaded }

// NumSamples is the total number of samples in the loaded stream.
func (s *Sampler) NumSamples() uint32 { return s.totalSamples }

// SampleRate reports the loaded stream's sample rate, 0 when unloaded.
func (s *Sampler) SampleRate() int {
	if !s.loaded {
		return 0
	}
	return s.loader.SampleRate()
}

// NumChannels reports the loaded stream's channel count, 0 when unloaded.
func (s *Sampler) NumChannels() int {
	if !s.loaded {
		return 0
	}
	return s.loader.NumChannels()
}
