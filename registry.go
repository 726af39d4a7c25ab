// SPDX-License-Identifier: EPL-2.0

package audsampler

import (
	"fmt"
	"sync"

	"github.com/ik5/audsampler/formats/aiff"
	"github.com/ik5/audsampler/formats/mp3"
	"github.com/ik5/audsampler/formats/vorbis"
	"github.com/ik5/audsampler/formats/wav"
	"github.com/ik5/audsampler/store"
	"github.com/ik5/audsampler/stream"
)

// Opener turns a byte store holding one container format into a loader
// bound to the store the engine should actually read from. Formats the
// engine cannot address sample-by-sample transcode into a fresh store
// and return that instead of the input.
type Opener func(st store.Store) (stream.Loader, store.Store, error)

// Registry maps format keys (e.g. "wav", "mp3") to openers.
type Registry struct {
	openers map[string]Opener

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		openers: make(map[string]Opener),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.openers[format] = o
}

func (r *Registry) Get(format string) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	o, ok := r.openers[format]
	return o, ok
}

// DefaultRegistry returns a registry with the built-in formats.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("wav", openWav)
	r.Register("mp3", openMP3)
	r.Register("ogg", openVorbis)
	r.Register("aiff", openAiff)
	return r
}

func openWav(st store.Store) (stream.Loader, store.Store, error) {
	return &wav.Loader{}, st, nil
}

// The transcoding openers drain the source store once and close it;
// playback continues from the in-memory result alone.

func openMP3(st store.Store) (stream.Loader, store.Store, error) {
	if err := st.Open(); err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}
	defer st.Close()

	mem, err := mp3.ToMemory(st)
	if err != nil {
		return nil, nil, err
	}
	return &wav.Loader{}, mem, nil
}

func openVorbis(st store.Store) (stream.Loader, store.Store, error) {
	if err := st.Open(); err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}
	defer st.Close()

	mem, err := vorbis.ToMemory(st)
	if err != nil {
		return nil, nil, err
	}
	return &wav.Loader{}, mem, nil
}

func openAiff(st store.Store) (stream.Loader, store.Store, error) {
	if err := st.Open(); err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}
	defer st.Close()

	mem, err := aiff.ToMemory(st)
	if err != nil {
		return nil, nil, err
	}
	return &wav.Loader{}, mem, nil
}
