package announce

import "github.com/guildwatch/announcer/repos/stratz"

const unknownLabel = "Unknown"

var lobbyLabels = map[stratz.LobbyType]string{
	stratz.LobbyUnranked:   "Unranked",
	stratz.LobbyPractice:   "Lobby",
	stratz.LobbyTournament: "The International",
	stratz.LobbyTutorial:   "Tutorial",
	stratz.LobbyCoopVsBots: "Bots",
	stratz.LobbyTeamMatch:  "Guild",
	stratz.LobbySoloQueue:  "Solo Ranked",
	stratz.LobbyRanked:     "Ranked",
	stratz.LobbySoloMid:    "Duel",
	stratz.LobbyBattleCup:  "Battle Cup",
	stratz.LobbyEvent:      "Event",
}

var gameModeLabels = map[stratz.GameMode]string{
	stratz.ModeNone:                  "None",
	stratz.ModeAllPick:               "All Pick",
	stratz.ModeCaptainsMode:          "Captains Mode",
	stratz.ModeRandomDraft:           "Random Draft",
	stratz.ModeSingleDraft:           "Single Draft",
	stratz.ModeAllRandom:             "All Random",
	stratz.ModeIntro:                 "Intro",
	stratz.ModeTheDiretide:           "Diretide",
	stratz.ModeReverseCaptainsMode:   "Reverse Captains Mode",
	stratz.ModeTheGreeviling:         "Greeviling",
	stratz.ModeTutorial:              "Tutorial",
	stratz.ModeMidOnly:               "Mid Only",
	stratz.ModeLeastPlayed:           "Least Played",
	stratz.ModeNewPlayerPool:         "Limited Heroes",
	stratz.ModeCompendiumMatchmaking: "Compendium",
	stratz.ModeCustom:                "Custom",
	stratz.ModeCaptainsDraft:         "Captains Draft",
	stratz.ModeBalancedDraft:         "Balanced Draft",
	stratz.ModeAbilityDraft:          "Ability Draft",
	stratz.ModeEvent:                 "Event",
	stratz.ModeAllRandomDeathMatch:   "All Random Deathmatch",
	stratz.ModeSoloMid:               "Solo Mid",
	stratz.ModeAllPickRanked:         "All Draft",
	stratz.ModeTurbo:                 "Turbo",
	stratz.ModeMutation:              "Mutation",
}

func LobbyLabel(lobby stratz.LobbyType) string {
	if label, ok := lobbyLabels[lobby]; ok {
		return label
	}
	return unknownLabel
}

func GameModeLabel(mode stratz.GameMode) string {
	if label, ok := gameModeLabels[mode]; ok {
		return label
	}
	return unknownLabel
}
