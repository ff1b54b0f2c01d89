package announce

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Run scans immediately and then once per period until ctx is cancelled.
// A failed scan is logged and retried at the next period.
func (s *AnnounceService) Run(ctx context.Context) {
	log.Infof("Watching guild %d every %s", s.opts.GuildID, s.opts.Period)

	for {
		if err := s.ScanOnce(ctx); err != nil {
			log.Errorf("Error in match scan: %v", err)
		}

		log.Trace("Sleeping until the next scan...")
		if !sleep(ctx, s.opts.Period) {
			log.Info("Stopped watching")
			return
		}
	}
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
