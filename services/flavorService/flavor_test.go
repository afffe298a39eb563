package flavorService

import "testing"

func TestGenerateFlavorLine(t *testing.T) {
	phases := []string{PhasePreBet, PhasePostWin, PhasePostLose}

	for _, phase := range phases {
		t.Run(phase, func(t *testing.T) {
			set := Lines(phase)
			if len(set) == 0 {
				t.Fatalf("Phase %s has no lines", phase)
			}

			for draw := 0; draw < 25; draw++ {
				line := GenerateFlavorLine(phase)
				found := false
				for _, candidate := range set {
					if candidate == line {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Line %q not in the %s set", line, phase)
				}
			}
		})
	}
}

func TestGenerateFlavorLineUnknownPhase(t *testing.T) {
	if line := GenerateFlavorLine("HALFTIME"); line != "" {
		t.Errorf("Expected empty line for unknown phase, got %q", line)
	}
}

func TestPhaseSetsAreDisjoint(t *testing.T) {
	seen := map[string]string{}
	for _, phase := range []string{PhasePreBet, PhasePostWin, PhasePostLose} {
		for _, line := range Lines(phase) {
			if other, ok := seen[line]; ok {
				t.Errorf("Line %q appears in both %s and %s", line, other, phase)
			}
			seen[line] = phase
		}
	}
}
