package archive

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/guildwatch/announcer/pkg/notification"
	log "github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection holds one document per announced match, keyed by match id.
const Collection = "Announcements"

// ErrArchive means the announcement could not be stored.
var ErrArchive = errors.New("archive write failed")

type Service struct {
	firestoreClient *firestore.Client
	guildID         int64
	now             func() time.Time
}

func NewService(firestoreClient *firestore.Client, guildID int64) *Service {
	return &Service{
		firestoreClient: firestoreClient,
		guildID:         guildID,
		now:             time.Now,
	}
}

func (s *Service) Name() string {
	return "archive"
}

// Send stores n unless a document for the match already exists.
func (s *Service) Send(ctx context.Context, n notification.Notification) error {
	docRef := s.firestoreClient.Collection(Collection).Doc(strconv.FormatInt(n.MatchID, 10))

	_, err := docRef.Create(ctx, NewRecord(s.guildID, n, s.now()))
	if err = ignoreExisting(err); err != nil {
		return xerrors.Errorf("match %d (%v): %w", n.MatchID, err, ErrArchive)
	}
	log.Tracef("Archived match %d", n.MatchID)
	return nil
}

// ignoreExisting treats an existing document as a successful write.
func ignoreExisting(err error) error {
	if err == nil || status.Code(err) == codes.AlreadyExists {
		return nil
	}
	return err
}

// NewRecord builds the document stored for n.
func NewRecord(guildID int64, n notification.Notification, archivedAt time.Time) Record {
	fields := make([]RecordField, 0, len(n.Fields))
	for _, f := range n.Fields {
		fields = append(fields, RecordField{Name: f.Name, Value: f.Value})
	}

	return Record{
		MatchID:    n.MatchID,
		GuildID:    guildID,
		GuildName:  n.Author.Name,
		Link:       n.Content,
		Title:      n.Title,
		Color:      n.Color,
		Fields:     fields,
		EndedAt:    n.Timestamp.UTC(),
		ArchivedAt: archivedAt.UTC(),
	}
}
