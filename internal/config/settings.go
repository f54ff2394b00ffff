package config

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/hitzone/internal/model"
)

// ParseDifficulty converts user input into a difficulty level.
func ParseDifficulty(value string) (model.Difficulty, error) {
	d := model.Difficulty(strings.ToLower(strings.TrimSpace(value)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q (want %s or %s)", value, model.DifficultyNormal, model.DifficultyHard)
	}
	return d, nil
}

// ValidateSettings checks settings supplied by the user before a session starts.
func ValidateSettings(s model.GameSettings) error {
	if !s.Difficulty.Valid() {
		return fmt.Errorf("--difficulty must be %s or %s", model.DifficultyNormal, model.DifficultyHard)
	}
	if s.CountHits <= 0 {
		return fmt.Errorf("--hits must be > 0")
	}
	if s.Speed <= 0 {
		return fmt.Errorf("--speed must be > 0")
	}
	return nil
}
