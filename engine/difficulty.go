package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// Difficulty selects the movement tick interval for a session
// The zero value is unset and rejected by Start
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyNormal
	DifficultyHard
)

var difficultyTable = map[Difficulty]struct {
	name     string
	interval time.Duration
}{
	DifficultyEasy:   {"Easy", constants.EasyInterval},
	DifficultyNormal: {"Normal", constants.NormalInterval},
	DifficultyHard:   {"Hard", constants.HardInterval},
}

// Difficulties lists the recognized tiers in menu order
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// Valid reports whether d is a recognized tier
func (d Difficulty) Valid() bool {
	_, ok := difficultyTable[d]
	return ok
}

// Interval returns the movement tick interval, zero for unrecognized tiers
func (d Difficulty) Interval() time.Duration {
	return difficultyTable[d].interval
}

func (d Difficulty) String() string {
	if e, ok := difficultyTable[d]; ok {
		return e.name
	}
	return "Unknown"
}

// ParseDifficulty resolves a case-insensitive tier name
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, s)
}
