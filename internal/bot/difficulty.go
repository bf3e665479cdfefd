package bot

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects the strategy the bot plays with.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (that Difficulty) String() string {
	switch that {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(that))
	}
}

// ParseDifficulty - parses "easy", "medium" or "hard", ignoring case.
func ParseDifficulty(value string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}
}

func (that Difficulty) MarshalText() ([]byte, error) {
	switch that {
	case Easy, Medium, Hard:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(that))
	}
}

func (that *Difficulty) UnmarshalText(text []byte) error {
	difficulty, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}

	*that = difficulty

	return nil
}
