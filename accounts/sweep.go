package accounts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/earnhalal/Lasercurrencystore/models"
)

// DefaultSweepInterval matches the original demo's admin-approval delay
const DefaultSweepInterval = 5 * time.Second

// Sweeper simulates the human admin who approves submitted payments: on a
// fixed interval it verifies the session user while they are awaiting
// admin verification. Ticks that find the session gone or in any other
// state do nothing, so a stale tick can never cause a transition. It is a
// demo stub; real deployments call Manager.Verify from an admin surface
// instead and leave the sweeper off.
type Sweeper struct {
	mgr      *Manager
	interval time.Duration
	logger   *zap.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSweeper builds a sweeper around mgr. A non-positive interval falls
// back to DefaultSweepInterval.
func NewSweeper(mgr *Manager, interval time.Duration, logger *zap.Logger) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sweeper{
		mgr:      mgr,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins sweeping in the background until Stop is called
func (s *Sweeper) Start() {
	go s.run()
}

// Stop halts the sweep. Safe to call more than once; returns after the
// sweep goroutine has exited.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

func (s *Sweeper) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Sweeper) tick() {
	user := s.mgr.Current()
	if user == nil || user.Status != models.StatusPendingAdminVerification {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.mgr.Verify(ctx, user.Email); err != nil {
		s.logger.Warn("sweep verify failed", zap.String("email", user.Email), zap.Error(err))
	}
}
