// SPDX-License-Identifier: EPL-2.0

package audsampler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/audsampler/store"
	"github.com/ik5/audsampler/stream"
)

// Open binds a byte store in the named format to a new sampler using the
// default registry. The caller owns the sampler and should Unload it when
// done.
func Open(format string, st store.Store, cfg stream.Config) (*stream.Sampler, error) {
	return OpenWith(DefaultRegistry(), format, st, cfg)
}

// OpenWith is Open against a caller-provided registry.
func OpenWith(r *Registry, format string, st store.Store, cfg stream.Config) (*stream.Sampler, error) {
	opener, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	loader, src, err := opener(st)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s, err := stream.NewSampler(cfg)
	if err != nil {
		return nil, err
	}
	if err := s.Load(loader, src); err != nil {
		return nil, err
	}

	return s, nil
}

// OpenFile opens a file with the format inferred from its extension.
func OpenFile(path string, cfg stream.Config) (*stream.Sampler, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	return Open(format, store.NewFile(path), cfg)
}

func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return "wav", nil
	case ".mp3":
		return "mp3", nil
	case ".ogg", ".oga":
		return "ogg", nil
	case ".aiff", ".aif":
		return "aiff", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// ReadAll drains a loaded sampler to the end of the stream, priming the
// cache in-line whenever the read path runs dry. It is the offline
// counterpart to the driver package's timer loops.
func ReadAll(s *stream.Sampler, bufSamples int) ([]int16, error) {
	if s == nil || !s.Loaded() {
		return nil, stream.ErrNotLoaded
	}
	if bufSamples <= 0 {
		bufSamples = 4096
	}

	out := make([]int16, 0, s.NumSamples()-s.Position())
	buf := make([]int16, bufSamples)

	for !s.AtEOF() {
		if n := s.ReadSamples(buf); n > 0 {
			out = append(out, buf[:n]...)
			continue
		}
		if !s.Prime() {
			return out, fmt.Errorf("%w: position %d of %d", ErrStalled, s.Position(), s.NumSamples())
		}
	}

	return out, nil
}
