package announce

import (
	"context"
	"time"

	"github.com/guildwatch/announcer/pkg/notification"
	"github.com/guildwatch/announcer/repos/stratz"
	"github.com/samborkent/uuidv7"
	log "github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// noCursor is lower than any STRATZ match id.
const noCursor int64 = -1

// Fetcher returns the latest matches of a guild, newest first.
type Fetcher interface {
	FetchMatches(ctx context.Context, guildID int64, take int) (*stratz.Response, error)
}

type Options struct {
	GuildID    int64
	Take       int
	MinPlayers int
	Period     time.Duration
}

// AnnounceService announces every new match of a guild once per process.
// It is not safe for concurrent use.
type AnnounceService struct {
	fetcher Fetcher
	sender  notification.Sender
	opts    Options
	cursor  int64
}

func NewAnnounceService(fetcher Fetcher, sender notification.Sender, opts Options) *AnnounceService {
	return &AnnounceService{
		fetcher: fetcher,
		sender:  sender,
		opts:    opts,
		cursor:  noCursor,
	}
}

// Cursor returns the highest match id seen so far.
func (s *AnnounceService) Cursor() int64 {
	return s.cursor
}

// ScanOnce fetches the latest matches and announces the new ones, oldest
// first. The first error stops the scan; matches announced before it stay
// announced.
func (s *AnnounceService) ScanOnce(ctx context.Context) error {
	logger := log.WithField("scan", uuidv7.New().String())
	logger.Debug("Starting match scan...")

	resp, err := s.fetcher.FetchMatches(ctx, s.opts.GuildID, s.opts.Take)
	if err != nil {
		return xerrors.Errorf("fetch matches: %w", err)
	}

	logger.Trace("Ensuring there are no errors in the data...")
	if err := resp.Err(); err != nil {
		return xerrors.Errorf("%v: %w", err, ErrUpstreamData)
	}

	guild, err := validateGuild(resp)
	if err != nil {
		return err
	}

	for i := len(guild.Matches) - 1; i >= 0; i-- {
		if err := s.announce(ctx, logger, guild, i); err != nil {
			return err
		}
	}

	logger.WithField("cursor", s.cursor).Debug("Completed match scan")
	return nil
}

func (s *AnnounceService) announce(ctx context.Context, logger *log.Entry, guild Guild, i int) error {
	raw := guild.Matches[i]
	if raw == nil {
		return missing("guild.matches[%d]", i)
	}
	if raw.ID == nil {
		return missing("guild.matches[%d].id", i)
	}
	logger = logger.WithField("match", *raw.ID)

	if *raw.ID <= s.cursor {
		logger.Trace("Skipping match, already announced")
		return nil
	}

	match, err := validateMatch(raw)
	if err != nil {
		return err
	}
	s.cursor = match.ID

	if len(match.Players) < s.opts.MinPlayers {
		logger.Debugf("Skipping match with %d of %d required players", len(match.Players), s.opts.MinPlayers)
		return nil
	}

	n := BuildNotification(guild, match)
	logger.Infof("Announcing %s", n.Title)
	if err := s.sender.Send(ctx, n); err != nil {
		return xerrors.Errorf("match %d via %s (%v): %w", match.ID, s.sender.Name(), err, ErrDispatch)
	}
	return nil
}
