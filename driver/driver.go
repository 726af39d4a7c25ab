// SPDX-License-Identifier: EPL-2.0

package driver

import (
	"context"
	"sync"
	"time"

	"github.com/ik5/audsampler/stream"
)

// Sink receives rendered samples. The chunk is reused between calls, so
// implementations must copy it if they hold on to the data.
type Sink func(chunk []int16)

// Config tunes the pump loops. The zero value picks usable defaults.
type Config struct {
	// FrameCount is the number of frames rendered per tick. Default 512.
	FrameCount int

	// PrimeInterval is the cadence of the prefetch loop. Default 5ms.
	PrimeInterval time.Duration
}

const (
	defaultFrameCount    = 512
	defaultPrimeInterval = 5 * time.Millisecond
)

// Driver runs the render and prime loops for one sampler.
type Driver struct {
	sampler *stream.Sampler
	sink    Sink
	cfg     Config

	renderBuf      []int16
	renderInterval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New builds a driver for a loaded sampler. The sampler must stay loaded
// while the driver runs; the render timing is derived from its sample rate
// and channel count at construction.
func New(s *stream.Sampler, sink Sink, cfg Config) (*Driver, error) {
	if s == nil || !s.Loaded() {
		return nil, stream.ErrNotLoaded
	}
	if sink == nil {
		return nil, ErrNilSink
	}

	if cfg.FrameCount <= 0 {
		cfg.FrameCount = defaultFrameCount
	}
	if cfg.PrimeInterval <= 0 {
		cfg.PrimeInterval = defaultPrimeInterval
	}

	return &Driver{
		sampler:        s,
		sink:           sink,
		cfg:            cfg,
		renderBuf:      make([]int16, cfg.FrameCount*s.NumChannels()),
		renderInterval: time.Duration(cfg.FrameCount) * time.Second / time.Duration(s.SampleRate()),
	}, nil
}

// Start launches the render and prime loops. Calling Start on a running
// driver is a no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.wg.Add(2)
	go d.renderLoop(ctx)
	go d.primeLoop(ctx)
}

// Stop halts both loops and waits for them to drain. Safe to call more
// than once.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	d.wg.Wait()
}

func (d *Driver) renderLoop(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.renderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := d.sampler.ReadSamples(d.renderBuf); n > 0 {
				d.sink(d.renderBuf[:n])
			}
		}
	}
}

func (d *Driver) primeLoop(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.cfg.PrimeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Drain the whole backlog so a seek recovers within one tick.
			for d.sampler.Prime() {
				select {
				case <-ctx.Done():
					return
				default:
				}
			}
		}
	}
}
