package announce

import (
	"time"

	"github.com/guildwatch/announcer/repos/stratz"
)

// Guild is a STRATZ guild with every required field present.
type Guild struct {
	ID      int64
	Name    string
	Logo    string
	Matches []*stratz.Match
}

// Match is a STRATZ match with every required field present.
type Match struct {
	ID        int64
	LobbyType stratz.LobbyType
	GameMode  stratz.GameMode
	Duration  int
	EndedAt   time.Time
	Players   []Player
}

// Player is a validated match participant. Imp is nil when STRATZ has no
// rating for the player.
type Player struct {
	IsRadiant bool
	IsVictory bool
	Kills     int
	Deaths    int
	Assists   int
	Imp       *int
	HeroID    int
	Name      string
}

func validateGuild(resp *stratz.Response) (Guild, error) {
	if resp == nil || resp.Data == nil {
		return Guild{}, missing("data")
	}
	g := resp.Data.Guild
	switch {
	case g == nil:
		return Guild{}, missing("guild")
	case g.ID == nil:
		return Guild{}, missing("guild.id")
	case g.Name == nil:
		return Guild{}, missing("guild.name")
	case g.Logo == nil:
		return Guild{}, missing("guild.logo")
	case g.Matches == nil:
		return Guild{}, missing("guild.matches")
	}

	return Guild{
		ID:      *g.ID,
		Name:    *g.Name,
		Logo:    *g.Logo,
		Matches: *g.Matches,
	}, nil
}

func validateMatch(m *stratz.Match) (Match, error) {
	switch {
	case m == nil:
		return Match{}, missing("match")
	case m.ID == nil:
		return Match{}, missing("match.id")
	case m.LobbyType == nil:
		return Match{}, missing("match.lobbyType")
	case m.GameMode == nil:
		return Match{}, missing("match.gameMode")
	case m.DurationSeconds == nil:
		return Match{}, missing("match.durationSeconds")
	case m.EndDateTime == nil:
		return Match{}, missing("match.endDateTime")
	case m.Players == nil:
		return Match{}, missing("match.players")
	}

	players := make([]Player, 0, len(*m.Players))
	for i, p := range *m.Players {
		player, err := validatePlayer(i, p)
		if err != nil {
			return Match{}, err
		}
		players = append(players, player)
	}

	return Match{
		ID:        *m.ID,
		LobbyType: *m.LobbyType,
		GameMode:  *m.GameMode,
		Duration:  *m.DurationSeconds,
		EndedAt:   time.Unix(*m.EndDateTime, 0).UTC(),
		Players:   players,
	}, nil
}

func validatePlayer(i int, p *stratz.Player) (Player, error) {
	switch {
	case p == nil:
		return Player{}, missing("match.players[%d]", i)
	case p.IsRadiant == nil:
		return Player{}, missing("match.players[%d].isRadiant", i)
	case p.IsVictory == nil:
		return Player{}, missing("match.players[%d].isVictory", i)
	case p.Kills == nil:
		return Player{}, missing("match.players[%d].kills", i)
	case p.Deaths == nil:
		return Player{}, missing("match.players[%d].deaths", i)
	case p.Assists == nil:
		return Player{}, missing("match.players[%d].assists", i)
	case p.SteamAccount == nil:
		return Player{}, missing("match.players[%d].steamAccount", i)
	case p.SteamAccount.Name == nil:
		return Player{}, missing("match.players[%d].steamAccount.name", i)
	case p.Hero == nil:
		return Player{}, missing("match.players[%d].hero", i)
	case p.Hero.ID == nil:
		return Player{}, missing("match.players[%d].hero.id", i)
	}

	return Player{
		IsRadiant: *p.IsRadiant,
		IsVictory: *p.IsVictory,
		Kills:     *p.Kills,
		Deaths:    *p.Deaths,
		Assists:   *p.Assists,
		Imp:       p.Imp,
		HeroID:    *p.Hero.ID,
		Name:      *p.SteamAccount.Name,
	}, nil
}
