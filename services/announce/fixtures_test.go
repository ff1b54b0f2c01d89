package announce

import (
	"context"
	"errors"

	"github.com/guildwatch/announcer/pkg/notification"
	"github.com/guildwatch/announcer/repos/stratz"
	"github.com/xorcare/pointer"
)

func testPlayer(name string, radiant, victory bool) *stratz.Player {
	return &stratz.Player{
		IsRadiant:    pointer.Bool(radiant),
		IsVictory:    pointer.Bool(victory),
		Kills:        pointer.Int(10),
		Deaths:       pointer.Int(2),
		Assists:      pointer.Int(7),
		Hero:         &stratz.Hero{ID: pointer.Int(14)},
		SteamAccount: &stratz.SteamAccount{Name: pointer.String(name)},
	}
}

func testMatch(id int64, players ...*stratz.Player) *stratz.Match {
	lobby := stratz.LobbyRanked
	mode := stratz.ModeAllPickRanked
	return &stratz.Match{
		ID:              pointer.Int64(id),
		LobbyType:       &lobby,
		GameMode:        &mode,
		DurationSeconds: pointer.Int(754),
		EndDateTime:     pointer.Int64(1700000000),
		Players:         &players,
	}
}

// testResponse lists matches as given; STRATZ returns them newest first.
func testResponse(matches ...*stratz.Match) *stratz.Response {
	return &stratz.Response{
		Data: &stratz.ResponseData{
			Guild: &stratz.Guild{
				ID:      pointer.Int64(4242),
				Name:    pointer.String("Royal Games"),
				Logo:    pointer.String("123456789"),
				Matches: &matches,
			},
		},
	}
}

type fakeFetcher struct {
	resp  *stratz.Response
	err   error
	calls int
}

func (f *fakeFetcher) FetchMatches(_ context.Context, _ int64, _ int) (*stratz.Response, error) {
	f.calls++
	return f.resp, f.err
}

type fakeSender struct {
	name   string
	sent   []notification.Notification
	failOn map[int64]bool
}

func (f *fakeSender) Name() string {
	if f.name == "" {
		return "fake"
	}
	return f.name
}

func (f *fakeSender) Send(_ context.Context, n notification.Notification) error {
	if f.failOn[n.MatchID] {
		return errors.New("delivery refused")
	}
	f.sent = append(f.sent, n)
	return nil
}

func (f *fakeSender) sentIDs() []int64 {
	ids := make([]int64, 0, len(f.sent))
	for _, n := range f.sent {
		ids = append(ids, n.MatchID)
	}
	return ids
}
