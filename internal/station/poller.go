// Package station tracks the live now-playing state of the radio stream.
package station

import (
	"context"
	"sync"
	"time"

	"remixradio/internal/azuracast"
	applog "remixradio/internal/log"
)

// Fetcher retrieves a now-playing snapshot from the station API.
type Fetcher interface {
	Fetch(ctx context.Context) (azuracast.NowPlaying, error)
}

// Status is a point-in-time view of the player state. Elapsed is the
// locally smoothed position, not the actual audio position.
type Status struct {
	Available bool                 `json:"available"`
	Snapshot  azuracast.NowPlaying `json:"snapshot,omitempty"`
	Elapsed   int                  `json:"elapsed"`
	Playing   bool                 `json:"playing"`
}

// Poller refreshes the now-playing snapshot on a fixed interval and runs an
// independent one-second clock that smooths the elapsed position between
// polls. Both timers stop together when the poller is stopped.
type Poller struct {
	fetcher      Fetcher
	pollInterval time.Duration
	tickInterval time.Duration

	mu       sync.Mutex
	snapshot *azuracast.NowPlaying
	elapsed  int
	playing  bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewPoller builds a stopped Poller.
func NewPoller(fetcher Fetcher, pollInterval, tickInterval time.Duration) *Poller {
	if pollInterval <= 0 {
		pollInterval = 15 * time.Second
	}
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	return &Poller{
		fetcher:      fetcher,
		pollInterval: pollInterval,
		tickInterval: tickInterval,
	}
}

// Start begins polling. The first fetch is issued immediately. Calling
// Start on a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	done := make(chan struct{})
	p.done = done
	p.mu.Unlock()

	go p.run(runCtx, done)
}

// Stop cancels both timers and waits for the loop to exit. Stop is
// idempotent and safe to call on a poller that never started.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the poll loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// SetPlaying toggles the playback-active flag gating the local clock.
func (p *Poller) SetPlaying(playing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = playing
}

// Status returns the current player view.
func (p *Poller) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	status := Status{
		Elapsed: p.elapsed,
		Playing: p.playing,
	}
	if p.snapshot != nil {
		status.Available = true
		status.Snapshot = *p.snapshot
	}
	return status
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	p.refresh(ctx)

	poll := time.NewTicker(p.pollInterval)
	tick := time.NewTicker(p.tickInterval)
	defer poll.Stop()
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			applog.Debug(ctx, "now-playing poller stopped")
			return
		case <-poll.C:
			p.refresh(ctx)
		case <-tick.C:
			p.advanceClock()
		}
	}
}

// refresh replaces the snapshot and resets the local clock to the
// server-reported position. Failures are logged and swallowed; the previous
// snapshot stays in place.
func (p *Poller) refresh(ctx context.Context) {
	snapshot, err := p.fetcher.Fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			applog.Warn(ctx, "now-playing fetch failed", "error", err)
		}
		return
	}

	p.mu.Lock()
	p.snapshot = &snapshot
	p.elapsed = snapshot.NowPlaying.Elapsed
	p.mu.Unlock()

	applog.Debug(ctx, "now-playing snapshot updated",
		"title", snapshot.NowPlaying.Song.Title,
		"elapsed", snapshot.NowPlaying.Elapsed,
		"duration", snapshot.NowPlaying.Duration,
	)
}

// advanceClock increments the smoothed position by one tick while playback
// is active, never past the snapshot's reported duration.
func (p *Poller) advanceClock() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.playing || p.snapshot == nil {
		return
	}
	if p.elapsed < p.snapshot.NowPlaying.Duration {
		p.elapsed++
	}
}
