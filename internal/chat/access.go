package chat

import (
	"sync"
	"time"

	"github.com/EvarJr/EBotikaApp/internal/config"
)

// Decision is the outcome of one attempted send through the access gate.
// A blocked decision carries how long the sender has to wait until a new
// window opens, so callers can surface it instead of dropping the message.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Gate enforces the free-tier messaging policy: a non-premium patient gets
// one 24-hour window of unlimited sends per conversation, then is locked out
// until 7 days have passed since the window opened. A single anchor
// timestamp per conversation is kept; allowed sends inside the window do not
// advance it.
//
// Premium patients and doctor-originated messages never go through the gate.
type Gate struct {
	mu      sync.Mutex
	windows map[string]time.Time
	now     func() time.Time
}

// NewGate returns a gate running on the wall clock.
func NewGate() *Gate {
	return NewGateWithClock(time.Now)
}

// NewGateWithClock returns a gate with an injected clock, for tests.
func NewGateWithClock(now func() time.Time) *Gate {
	return &Gate{
		windows: make(map[string]time.Time),
		now:     now,
	}
}

// Evaluate decides whether a send is allowed right now and advances the
// window state accordingly:
//
//   - no window yet: open one at "now", allow
//   - elapsed <= 24h: allow, window unchanged
//   - 24h < elapsed < 7d: block, window unchanged
//   - elapsed >= 7d: re-open the window at "now", allow
//
// Exact boundaries: elapsed == 24h is still allowed, elapsed == 7d already
// resets.
func (g *Gate) Evaluate(conversationID string) Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	start, ok := g.windows[conversationID]
	if !ok {
		g.windows[conversationID] = now
		return Decision{Allowed: true}
	}

	elapsed := now.Sub(start)
	switch {
	case elapsed <= config.FreeChatWindow:
		return Decision{Allowed: true}
	case elapsed >= config.FreeChatCycle:
		g.windows[conversationID] = now
		return Decision{Allowed: true}
	default:
		return Decision{Allowed: false, RetryAfter: config.FreeChatCycle - elapsed}
	}
}

// WindowStart reports the anchor timestamp for a conversation, if a cycle
// has been started.
func (g *Gate) WindowStart(conversationID string) (time.Time, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	start, ok := g.windows[conversationID]
	return start, ok
}

// Snapshot copies the window map, for persistence.
func (g *Gate) Snapshot() map[string]time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string]time.Time, len(g.windows))
	for k, v := range g.windows {
		out[k] = v
	}
	return out
}

// Restore replaces the window state with a previously taken snapshot.
func (g *Gate) Restore(windows map[string]time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.windows = make(map[string]time.Time, len(windows))
	for k, v := range windows {
		g.windows[k] = v
	}
}
