package stratz

import (
	"fmt"
	"strings"
)

// Response is the GraphQL envelope returned by STRATZ. Either Data or Errors
// may be absent.
type Response struct {
	Data   *ResponseData  `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

type ResponseData struct {
	Guild *Guild `json:"guild"`
}

type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// ResponseError is returned when the response reports GraphQL errors.
type ResponseError struct {
	Errors []GraphQLError
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, gqlErr := range e.Errors {
		msgs = append(msgs, gqlErr.Message)
	}
	return fmt.Sprintf("stratz reported %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Err returns a *ResponseError when the response carries errors.
func (r *Response) Err() error {
	if r == nil || len(r.Errors) == 0 {
		return nil
	}
	return &ResponseError{Errors: r.Errors}
}

type Guild struct {
	ID      *int64    `json:"id"`
	Name    *string   `json:"name"`
	Logo    *string   `json:"logo"`
	Matches *[]*Match `json:"matches"`
}

type Match struct {
	ID              *int64     `json:"id"`
	LobbyType       *LobbyType `json:"lobbyType"`
	GameMode        *GameMode  `json:"gameMode"`
	DurationSeconds *int       `json:"durationSeconds"`
	EndDateTime     *int64     `json:"endDateTime"`
	Players         *[]*Player `json:"players"`
}

type Player struct {
	IsRadiant    *bool         `json:"isRadiant"`
	IsVictory    *bool         `json:"isVictory"`
	Kills        *int          `json:"kills"`
	Deaths       *int          `json:"deaths"`
	Assists      *int          `json:"assists"`
	Imp          *int          `json:"imp"`
	Hero         *Hero         `json:"hero"`
	SteamAccount *SteamAccount `json:"steamAccount"`
}

type Hero struct {
	ID *int `json:"id"`
}

type SteamAccount struct {
	Name *string `json:"name"`
}

// LobbyType mirrors the LobbyTypeEnum of the STRATZ schema. Values outside
// the constants below decode unchanged.
type LobbyType string

const (
	LobbyUnranked   LobbyType = "UNRANKED"
	LobbyPractice   LobbyType = "PRACTICE"
	LobbyTournament LobbyType = "TOURNAMENT"
	LobbyTutorial   LobbyType = "TUTORIAL"
	LobbyCoopVsBots LobbyType = "COOP_VS_BOTS"
	LobbyTeamMatch  LobbyType = "TEAM_MATCH"
	LobbySoloQueue  LobbyType = "SOLO_QUEUE"
	LobbyRanked     LobbyType = "RANKED"
	LobbySoloMid    LobbyType = "SOLO_MID"
	LobbyBattleCup  LobbyType = "BATTLE_CUP"
	LobbyEvent      LobbyType = "EVENT"
)

// GameMode mirrors the GameModeEnumType of the STRATZ schema.
type GameMode string

const (
	ModeNone                  GameMode = "NONE"
	ModeAllPick               GameMode = "ALL_PICK"
	ModeCaptainsMode          GameMode = "CAPTAINS_MODE"
	ModeRandomDraft           GameMode = "RANDOM_DRAFT"
	ModeSingleDraft           GameMode = "SINGLE_DRAFT"
	ModeAllRandom             GameMode = "ALL_RANDOM"
	ModeIntro                 GameMode = "INTRO"
	ModeTheDiretide           GameMode = "THE_DIRETIDE"
	ModeReverseCaptainsMode   GameMode = "REVERSE_CAPTAINS_MODE"
	ModeTheGreeviling         GameMode = "THE_GREEVILING"
	ModeTutorial              GameMode = "TUTORIAL"
	ModeMidOnly               GameMode = "MID_ONLY"
	ModeLeastPlayed           GameMode = "LEAST_PLAYED"
	ModeNewPlayerPool         GameMode = "NEW_PLAYER_POOL"
	ModeCompendiumMatchmaking GameMode = "COMPENDIUM_MATCHMAKING"
	ModeCustom                GameMode = "CUSTOM"
	ModeCaptainsDraft         GameMode = "CAPTAINS_DRAFT"
	ModeBalancedDraft         GameMode = "BALANCED_DRAFT"
	ModeAbilityDraft          GameMode = "ABILITY_DRAFT"
	ModeEvent                 GameMode = "EVENT"
	ModeAllRandomDeathMatch   GameMode = "ALL_RANDOM_DEATH_MATCH"
	ModeSoloMid               GameMode = "SOLO_MID"
	ModeAllPickRanked         GameMode = "ALL_PICK_RANKED"
	ModeTurbo                 GameMode = "TURBO"
	ModeMutation              GameMode = "MUTATION"
)
