package announce

// Outcome is the result of a match from the guild's point of view.
type Outcome int

const (
	Cancelled Outcome = iota
	Victory
	Defeat
	// Split means some players won and others lost the same match.
	Split
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "Victory"
	case Defeat:
		return "Defeat"
	case Split:
		return "Clash"
	default:
		return "Cancelled"
	}
}

// Color is the embed color of the outcome.
func (o Outcome) Color() int {
	switch o {
	case Victory:
		return 0x57F287
	case Defeat:
		return 0xED4245
	case Split:
		return 0xFEE75C
	default:
		return 0x5865F2
	}
}

// Classify derives the outcome from the victory flags of all players.
func Classify(players []Player) Outcome {
	var won, lost bool
	for _, p := range players {
		if p.IsVictory {
			won = true
		} else {
			lost = true
		}
	}

	switch {
	case won && lost:
		return Split
	case won:
		return Victory
	case lost:
		return Defeat
	default:
		return Cancelled
	}
}

// Sides splits players into Radiant and Dire, keeping their order.
func Sides(players []Player) (radiant, dire []Player) {
	for _, p := range players {
		if p.IsRadiant {
			radiant = append(radiant, p)
		} else {
			dire = append(dire, p)
		}
	}
	return radiant, dire
}
