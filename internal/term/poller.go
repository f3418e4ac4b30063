package term

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/gravitrone/listbox/internal/scroll"
)

// DefaultPollInterval is the delay between key state checks.
const DefaultPollInterval = 200 * time.Millisecond

// ErrClosed is returned by a Poller after Close.
var ErrClosed = errors.New("poller closed")

type polled struct {
	ev  scroll.Event
	err error
}

// Poller checks for keys on a fixed delay instead of blocking on the
// terminal. ReadEvent still blocks its caller until an event is available,
// so it can stand in for any other Input.
type Poller struct {
	src      scroll.Input
	interval time.Duration

	pending chan polled
	done    chan struct{}
	stopped atomic.Bool

	startOnce sync.Once
	closeOnce sync.Once
}

// NewPoller polls src every interval. A non-positive interval uses
// DefaultPollInterval.
func NewPoller(src scroll.Input, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		src:      src,
		interval: interval,
		pending:  make(chan polled, 1),
		done:     make(chan struct{}),
	}
}

// ReadEvent returns the next event, sleeping one interval between checks.
func (p *Poller) ReadEvent() (scroll.Event, error) {
	p.startOnce.Do(func() { go p.collect() })
	for {
		select {
		case got := <-p.pending:
			return got.ev, got.err
		default:
		}
		if p.stopped.Load() {
			return scroll.EventIgnore, ErrClosed
		}
		time.Sleep(p.interval)
	}
}

// Close stops polling. The source is not closed: a collector blocked in the
// source's ReadEvent exits once that read returns, so close a Keyboard
// source after its Poller to release it.
func (p *Poller) Close() error {
	p.closeOnce.Do(func() {
		p.stopped.Store(true)
		close(p.done)
	})
	return nil
}

func (p *Poller) collect() {
	for !p.stopped.Load() {
		ev, err := p.src.ReadEvent()
		select {
		case p.pending <- polled{ev: ev, err: err}:
		case <-p.done:
			return
		}
		if err != nil {
			return
		}
	}
}
