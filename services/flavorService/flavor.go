package flavorService

import "math/rand"

const (
	PhasePreBet   = "PRE_BET"
	PhasePostWin  = "POST_WIN"
	PhasePostLose = "POST_LOSE"
)

var lines = map[string][]string{
	PhasePreBet: {
		"The house always shows up. Your move.",
		"Stake's on the table. Hope you brought more than luck.",
		"I've bankrolled bigger bets before breakfast.",
		"Matched. Try not to make it boring.",
		"Easy credits. For me, I mean.",
	},
	PhasePostWin: {
		"The house thanks you for your donation.",
		"Another one for the vault. Come back when the wallet recovers.",
		"That went exactly how I expected.",
		"Credits well spent. By you. To me.",
	},
	PhasePostLose: {
		"Enjoy it. The house has a long memory.",
		"A rounding error in my bankroll. Congratulations anyway.",
		"You got one. Nobody gets two.",
		"Take the credits. I'll take them back later.",
	},
}

// GenerateFlavorLine returns one line from the fixed set for the phase.
// Stateless; unknown phases yield an empty string.
func GenerateFlavorLine(phase string) string {
	set, ok := lines[phase]
	if !ok || len(set) == 0 {
		return ""
	}
	return set[rand.Intn(len(set))]
}

// Lines exposes the full set for a phase so callers can test category
// membership.
func Lines(phase string) []string {
	return lines[phase]
}
