package audio

import (
	"fmt"
	"strings"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundBell   SoundType = iota // Food eaten
	SoundCoin                    // Bonus eaten
	SoundWhoosh                  // Bonus expired
	SoundBuzz                    // Game over
	soundTypeCount
)

var soundNames = [...]string{
	SoundBell:   "bell",
	SoundCoin:   "coin",
	SoundWhoosh: "whoosh",
	SoundBuzz:   "buzz",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a lowercase effect name as used in config files
func ParseSoundType(name string) (SoundType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for st := SoundType(0); st < soundTypeCount; st++ {
		if soundNames[st] == name {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown sound effect %q", name)
}
