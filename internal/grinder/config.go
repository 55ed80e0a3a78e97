package grinder

import (
	"errors"
	"fmt"

	"lesiw.io/seedgrinder/internal/posix"
)

const (
	// BaseSeed is the generator state at seed-space position 0.
	BaseSeed = 0x6A4F8C55

	// Space is the number of seed-space positions.
	Space = 1 << 31

	// WindowSize is the number of consecutive states read per seed.
	WindowSize = 32

	// NumWords is the size of the briefcase word table.
	NumWords = 20

	DefaultCap   = 100
	DefaultWidth = 8
)

var ErrConfig = errors.New("bad config")

// Config holds every constant the engine depends on. Build it once with
// DefaultConfig and share it by pointer; nothing in this package writes
// to it.
type Config struct {
	BaseSeed uint32
	Gen      posix.LCG

	// Moduli reduces each window slot before derivation. Zero leaves the
	// slot as is.
	Moduli [WindowSize]uint32

	Words [NumWords]string

	// Cap is the number of results after which a search stops.
	Cap int

	// Width is the number of positions evaluated per batch.
	Width int
}

func DefaultConfig() *Config {
	return &Config{
		BaseSeed: BaseSeed,
		Gen:      posix.Rand(),
		Moduli: [WindowSize]uint32{
			0, 660, 0, 0, 0, 0, 0, 9,
			9, 8, 9, 9, 8, 9, 9, 8,
			9, 9, 8, 9, 8, 7, 6, 5,
			4, 3, 2, 1, 0, 0, 19, 0,
		},
		Words: [NumWords]string{
			"open", "damn", "hell", "town",
			"dark", "mama", "down", "love",
			"lock", "mist", "luck", "lose",
			"dose", "over", "dust", "time",
			"help", "kill", "null", "cock",
		},
		Cap:   DefaultCap,
		Width: DefaultWidth,
	}
}

// Validate checks that cfg describes a usable engine. Derivation indexes
// the shuffle deck and the word table with reduced slots, so their moduli
// are bounded here.
func (cfg *Config) Validate() error {
	if cfg.BaseSeed > posix.Mask {
		return fmt.Errorf("%w: base seed %#x exceeds 31 bits", ErrConfig, cfg.BaseSeed)
	}
	if !cfg.Gen.FullPeriod() {
		return fmt.Errorf("%w: generator %+v is not full period", ErrConfig, cfg.Gen)
	}
	if cfg.Cap <= 0 {
		return fmt.Errorf("%w: cap %d", ErrConfig, cfg.Cap)
	}
	if cfg.Width <= 0 {
		return fmt.Errorf("%w: width %d", ErrConfig, cfg.Width)
	}
	if cfg.Moduli[clockReg] == 0 {
		return fmt.Errorf("%w: clock slot is not reduced", ErrConfig)
	}
	for i := 0; i < shuffleSize; i++ {
		if m := cfg.Moduli[arsonistReg+i]; m == 0 || m > uint32(shuffleSize-i) {
			return fmt.Errorf("%w: shuffle slot %d has modulus %d", ErrConfig, arsonistReg+i, m)
		}
	}
	if m := cfg.Moduli[caseReg]; m == 0 || m > NumWords {
		return fmt.Errorf("%w: case slot has modulus %d", ErrConfig, m)
	}
	return nil
}

// Word returns the briefcase word for index i.
func (cfg *Config) Word(i uint32) string {
	if i >= NumWords {
		return ""
	}
	return cfg.Words[i]
}

// WordIndex returns the index of word w in the briefcase table.
func (cfg *Config) WordIndex(w string) (uint32, bool) {
	for i, word := range cfg.Words {
		if word == w {
			return uint32(i), true
		}
	}
	return 0, false
}

// Reachable reports whether any seed can derive v for slot s. Only the
// clock and the case word have values their draws never produce.
func (cfg *Config) Reachable(s Slot, v uint32) bool {
	switch s {
	case Clock:
		if v > clockFold {
			return v > clockFold+clockGap && v-clockGap < cfg.Moduli[clockReg]
		}
		return v < cfg.Moduli[clockReg]
	case Case:
		return v < cfg.Moduli[caseReg]
	default:
		return true
	}
}
