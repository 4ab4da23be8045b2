package accounts

import (
	"sync"
	"time"
)

// DefaultPaymentWindow is how long a new signup has to submit payment
// proof before the signup is reset.
const DefaultPaymentWindow = 5 * time.Minute

// Countdown is a single-shot payment timer. The expiry callback runs
// exactly once when the window elapses; Stop before expiry prevents it
// from ever running.
type Countdown struct {
	mu       sync.Mutex
	timer    *time.Timer
	deadline time.Time
	stopped  bool
	fired    bool
}

// StartCountdown arms a countdown for the given window. A non-positive
// window falls back to DefaultPaymentWindow.
func StartCountdown(window time.Duration, onExpire func()) *Countdown {
	if window <= 0 {
		window = DefaultPaymentWindow
	}
	c := &Countdown{deadline: time.Now().Add(window)}
	c.timer = time.AfterFunc(window, func() {
		c.mu.Lock()
		if c.stopped || c.fired {
			c.mu.Unlock()
			return
		}
		c.fired = true
		c.mu.Unlock()
		onExpire()
	})
	return c
}

// Stop cancels the countdown. It is a no-op after expiry.
func (c *Countdown) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()
	c.timer.Stop()
}

// Remaining reports how much of the window is left, never negative
func (c *Countdown) Remaining() time.Duration {
	left := time.Until(c.deadline)
	if left < 0 {
		return 0
	}
	return left
}
