package store

import (
	"context"
	"time"

	"go-iptv-portal/logger"

	"github.com/sirupsen/logrus"
)

// Sweeper periodically evicts expired entries from the token and session
// stores. It is purely a memory-reclamation measure: every read path checks
// expiry on its own, so entries lingering between sweeps are harmless.
type Sweeper struct {
	tokens   *TokenStore
	sessions *SessionStore
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewSweeper(tokens *TokenStore, sessions *SessionStore, interval time.Duration) *Sweeper {
	return &Sweeper{
		tokens:   tokens,
		sessions: sessions,
		interval: interval,
	}
}

// Start launches the sweep loop in its own goroutine.
func (sw *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	sw.cancel = cancel
	sw.done = make(chan struct{})

	logger.Log.WithField("interval", sw.interval.String()).Info("Expiry sweeper started")
	go sw.run(ctx)
}

// Stop terminates the sweep loop and waits for it to exit. Calling Stop
// without a prior Start is a no-op.
func (sw *Sweeper) Stop() {
	if sw.cancel == nil {
		return
	}
	sw.cancel()
	<-sw.done
	logger.Log.Info("Expiry sweeper stopped")
}

func (sw *Sweeper) run(ctx context.Context) {
	defer close(sw.done)

	ticker := time.NewTicker(sw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tokens := sw.tokens.Sweep()
			sessions := sw.sessions.Sweep()
			if tokens > 0 || sessions > 0 {
				logger.Log.WithFields(logrus.Fields{
					"expired_tokens":   tokens,
					"expired_sessions": sessions,
				}).Info("Sweep evicted expired entries")
			}
		}
	}
}
