package archive

import (
	"errors"
	"testing"
	"time"

	"github.com/guildwatch/announcer/pkg/notification"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNewRecord(t *testing.T) {
	n := notification.Notification{
		MatchID: 7000000002,
		Content: "https://stratz.com/matches/7000000002",
		Author:  notification.Author{Name: "Royal Games"},
		Title:   "Victory · Ranked · Turbo",
		Color:   0x57F287,
		Fields: []notification.Field{
			{Name: "Radiant", Value: "a", Inline: true},
			{Name: "Duration", Value: "12:34"},
		},
		Timestamp: time.Unix(1700000000, 0),
	}
	archivedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))

	record := NewRecord(4242, n, archivedAt)

	assert.Equal(t, int64(7000000002), record.MatchID)
	assert.Equal(t, int64(4242), record.GuildID)
	assert.Equal(t, "Royal Games", record.GuildName)
	assert.Equal(t, n.Content, record.Link)
	assert.Equal(t, n.Title, record.Title)
	assert.Equal(t, 0x57F287, record.Color)
	assert.Equal(t, []RecordField{
		{Name: "Radiant", Value: "a"},
		{Name: "Duration", Value: "12:34"},
	}, record.Fields)
	assert.Equal(t, time.UTC, record.EndedAt.Location())
	assert.True(t, record.EndedAt.Equal(time.Unix(1700000000, 0)))
	assert.Equal(t, time.UTC, record.ArchivedAt.Location())
	assert.True(t, record.ArchivedAt.Equal(archivedAt))
}

func TestIgnoreExisting(t *testing.T) {
	assert.NoError(t, ignoreExisting(nil))
	assert.NoError(t, ignoreExisting(status.Error(codes.AlreadyExists, "document exists")))

	unavailable := status.Error(codes.Unavailable, "try later")
	assert.Equal(t, unavailable, ignoreExisting(unavailable))

	plain := errors.New("boom")
	assert.Equal(t, plain, ignoreExisting(plain))
}

func TestName(t *testing.T) {
	assert.Equal(t, "archive", NewService(nil, 1).Name())
}
