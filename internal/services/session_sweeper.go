package services

import (
	"context"
	"log"
	"time"
)

// SessionSweeper periodically removes expired user_sessions rows so the table
// does not accumulate dead tokens between logins.
type SessionSweeper struct {
	sessions *SessionService
	interval time.Duration
}

func NewSessionSweeper(sessions *SessionService, interval time.Duration) *SessionSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SessionSweeper{sessions: sessions, interval: interval}
}

func (sweeper *SessionSweeper) Start(ctx context.Context) {
	go sweeper.run(ctx)
}

func (sweeper *SessionSweeper) run(ctx context.Context) {
	ticker := time.NewTicker(sweeper.interval)
	defer ticker.Stop()

	sweeper.sweep()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweeper.sweep()
		}
	}
}

func (sweeper *SessionSweeper) sweep() {
	purged, err := sweeper.sessions.PurgeExpired(time.Now())
	if err != nil {
		log.Printf("session sweeper: purge failed: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("session sweeper: purged %d expired session(s)", purged)
	}
}
