package announce

import (
	"context"

	"github.com/guildwatch/announcer/pkg/notification"
	log "github.com/sirupsen/logrus"
)

// Fanout delivers to a primary sender and then copies successful deliveries
// to any number of best-effort mirrors.
type Fanout struct {
	primary notification.Sender
	mirrors []notification.Sender
}

func NewFanout(primary notification.Sender, mirrors ...notification.Sender) *Fanout {
	return &Fanout{
		primary: primary,
		mirrors: mirrors,
	}
}

func (f *Fanout) Name() string {
	return f.primary.Name()
}

// Send returns the error of the primary sender only. Mirrors are skipped
// when the primary fails.
func (f *Fanout) Send(ctx context.Context, n notification.Notification) error {
	if err := f.primary.Send(ctx, n); err != nil {
		return err
	}

	for _, mirror := range f.mirrors {
		if err := mirror.Send(ctx, n); err != nil {
			log.WithFields(log.Fields{
				"mirror": mirror.Name(),
				"match":  n.MatchID,
			}).Warnf("Failed to mirror announcement: %v", err)
		}
	}
	return nil
}
