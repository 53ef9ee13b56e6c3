package service

import (
	"log/slog"
	"time"
)

// DefaultSweepInterval is how often in-memory auth state is swept.
const DefaultSweepInterval = 60 * time.Second

// HousekeepingService periodically sweeps the replay guard, the session store
// and the login states. It never touches the network, so a stalled upstream
// call cannot hold it up.
type HousekeepingService struct {
	Replay        *ReplayGuard
	Sessions      *SessionStore
	States        *StateStore
	SessionWindow time.Duration
	Logger        *slog.Logger
	Interval      time.Duration

	now func() time.Time

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a sweeper. A non-positive interval defaults
// to DefaultSweepInterval and a nil clock to time.Now.
func NewHousekeepingService(
	replay *ReplayGuard,
	sessions *SessionStore,
	states *StateStore,
	sessionWindow time.Duration,
	interval time.Duration,
	logger *slog.Logger,
	now func() time.Time,
) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if sessionWindow <= 0 {
		sessionWindow = DefaultSessionWindow
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		Replay:        replay,
		Sessions:      sessions,
		States:        states,
		SessionWindow: sessionWindow,
		Logger:        logger,
		Interval:      interval,
		now:           now,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the worker and waits for an in-progress sweep to finish.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep immediately on startup
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep runs each cleanup on its own; a panic in one is logged and does not
// stop the others or later sweeps.
func (s *HousekeepingService) sweep() {
	now := s.now()

	codes := s.guard("replay guard", func() int {
		if s.Replay == nil {
			return 0
		}
		return s.Replay.Sweep(now)
	})
	sessions := s.guard("sessions", func() int {
		if s.Sessions == nil {
			return 0
		}
		return s.Sessions.EvictOlderThan(s.SessionWindow, now)
	})
	states := s.guard("login states", func() int {
		if s.States == nil {
			return 0
		}
		return s.States.Sweep(now)
	})

	s.Logger.Debug("housekeeping sweep completed",
		"codes_removed", codes,
		"sessions_removed", sessions,
		"states_removed", states,
	)
}

func (s *HousekeepingService) guard(name string, fn func() int) (removed int) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("housekeeping sweep panicked", "target", name, "panic", r)
			removed = 0
		}
	}()
	return fn()
}
