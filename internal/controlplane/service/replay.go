package service

import (
	"sync"
	"time"
)

// DefaultReplayWindow is how long a redeemed authorization code is remembered.
const DefaultReplayWindow = 60 * time.Second

// ReplayGuard remembers which authorization codes have been redeemed so a
// code can reach the token endpoint at most once. Marks are kept in memory
// and dropped by Sweep once they are older than Window.
type ReplayGuard struct {
	Window time.Duration

	now   func() time.Time
	mu    sync.Mutex
	marks map[string]time.Time
}

func NewReplayGuard(window time.Duration, now func() time.Time) *ReplayGuard {
	if window <= 0 {
		window = DefaultReplayWindow
	}
	if now == nil {
		now = time.Now
	}
	return &ReplayGuard{
		Window: window,
		now:    now,
		marks:  make(map[string]time.Time),
	}
}

// TryMark records code as redeemed. It returns false when code was already
// marked; exactly one of any number of concurrent callers gets true.
func (g *ReplayGuard) TryMark(code string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, seen := g.marks[code]; seen {
		return false
	}
	g.marks[code] = g.now()
	return true
}

// Sweep drops marks strictly older than the window and returns how many went.
func (g *ReplayGuard) Sweep(now time.Time) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for code, at := range g.marks {
		if now.Sub(at) > g.Window {
			delete(g.marks, code)
			removed++
		}
	}
	return removed
}

func (g *ReplayGuard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.marks)
}

// release unmarks code. Only the exchanger uses it, and only for transport
// failures when explicitly configured.
func (g *ReplayGuard) release(code string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.marks, code)
}
