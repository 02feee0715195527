package fetcher

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

func (s breakerState) String() string {
	switch s {
	case stateOpen:
		return "open"
	case stateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// hostBreaker counts consecutive exhausted downloads per upstream host
// and rejects requests to a host once it keeps failing, so a dead
// upstream gets a cooldown instead of a retry storm. After the cooldown
// a single probe request is let through; its outcome decides between
// closing the circuit again and another cooldown.
type hostBreaker struct {
	threshold int
	cooldown  time.Duration

	mu    sync.Mutex
	hosts map[string]*hostEntry

	now func() time.Time
}

type hostEntry struct {
	state    breakerState
	failures int
	openedAt time.Time
}

func newHostBreaker(threshold int, cooldown time.Duration) *hostBreaker {
	if threshold <= 0 {
		threshold = 5
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &hostBreaker{
		threshold: threshold,
		cooldown:  cooldown,
		hosts:     make(map[string]*hostEntry),
		now:       time.Now,
	}
}

// allow reports whether a request to host may proceed. An open host
// admits one probe once the cooldown has elapsed.
func (b *hostBreaker) allow(host string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.hosts[host]
	if !ok || e.state != stateOpen {
		return true
	}
	if b.now().Sub(e.openedAt) < b.cooldown {
		return false
	}
	e.state = stateHalfOpen
	zap.L().Info("fetcher: probing host after cooldown", zap.String("host", host))
	return true
}

// success clears the host's failure history.
func (b *hostBreaker) success(host string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.hosts[host]
	if !ok {
		return
	}
	if e.state != stateClosed {
		zap.L().Info("fetcher: host circuit closed", zap.String("host", host))
	}
	delete(b.hosts, host)
}

// failure records an exhausted download. The circuit opens at the
// failure threshold, and a failed half-open probe reopens it at once.
func (b *hostBreaker) failure(host string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.hosts[host]
	if !ok {
		e = &hostEntry{}
		b.hosts[host] = e
	}

	e.failures++
	if e.state != stateHalfOpen && e.failures < b.threshold {
		return
	}
	if e.state != stateOpen {
		zap.L().Warn("fetcher: host circuit opened",
			zap.String("host", host),
			zap.Int("failures", e.failures),
			zap.Duration("cooldown", b.cooldown),
		)
	}
	e.state = stateOpen
	e.openedAt = b.now()
}

// stateOf reports the host's current state, for tests and logging.
func (b *hostBreaker) stateOf(host string) breakerState {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.hosts[host]
	if !ok {
		return stateClosed
	}
	return e.state
}
