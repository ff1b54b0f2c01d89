package announce

import (
	"fmt"
	"strings"

	"github.com/guildwatch/announcer/pkg/notification"
)

const (
	matchURL    = "https://stratz.com/matches/%d"
	guildURL    = "https://stratz.com/guilds/%d"
	guildIcon   = "https://steamusercontent-a.akamaihd.net/ugc/%s/"
	titleSep    = " · "
	radiantTag  = "<:radiant:958274781919207505> Radiant"
	direTag     = "<:dire:958274694203719740> Dire"
	durationTag = ":clock3: Duration"
)

// FormatDuration renders seconds as minutes:seconds, e.g. 754 as "12:34".
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// PlayerLine renders one player as emoji, name and K/D/A, followed by the
// signed IMP when known.
func PlayerLine(p Player) string {
	line := fmt.Sprintf("%s %s [%d/%d/%d]", HeroEmoji(p.HeroID), p.Name, p.Kills, p.Deaths, p.Assists)
	if p.Imp != nil {
		line += fmt.Sprintf(" `%+d`", *p.Imp)
	}
	return line
}

func playerLines(players []Player) string {
	lines := make([]string, 0, len(players))
	for _, p := range players {
		lines = append(lines, PlayerLine(p))
	}
	return strings.Join(lines, "\n")
}

// BuildNotification describes a validated match of guild.
func BuildNotification(guild Guild, match Match) notification.Notification {
	outcome := Classify(match.Players)
	radiant, dire := Sides(match.Players)

	var fields []notification.Field
	if len(radiant) > 0 {
		fields = append(fields, notification.Field{Name: radiantTag, Value: playerLines(radiant), Inline: true})
	}
	if len(dire) > 0 {
		fields = append(fields, notification.Field{Name: direTag, Value: playerLines(dire), Inline: true})
	}
	fields = append(fields, notification.Field{Name: durationTag, Value: FormatDuration(match.Duration)})

	return notification.Notification{
		MatchID: match.ID,
		Content: fmt.Sprintf(matchURL, match.ID),
		Author: notification.Author{
			Name:    guild.Name,
			URL:     fmt.Sprintf(guildURL, guild.ID),
			IconURL: fmt.Sprintf(guildIcon, guild.Logo),
		},
		Title:     strings.Join([]string{outcome.String(), LobbyLabel(match.LobbyType), GameModeLabel(match.GameMode)}, titleSep),
		Color:     outcome.Color(),
		Fields:    fields,
		Timestamp: match.EndedAt,
	}
}
