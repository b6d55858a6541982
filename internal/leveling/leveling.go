// Package leveling derives account level from cumulative experience.
package leveling

import (
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// LevelFor returns floor(experience/100) + 1. Negative experience is treated as zero.
func LevelFor(experience int64) int {
	if experience < 0 {
		return domain.StartingLevel
	}
	return int(experience/domain.ExperiencePerLevel) + domain.StartingLevel
}

// Grant is the result of adding experience to an account
type Grant struct {
	Experience int64
	Level      int
	LeveledUp  bool
}

// Apply adds amount to the account's experience and recomputes its level.
// Level never decreases, even if the stored value is ahead of its experience.
func Apply(account *domain.Account, amount int64) Grant {
	if amount > 0 {
		account.Experience += amount
	}

	before := account.Level
	if lvl := LevelFor(account.Experience); lvl > account.Level {
		account.Level = lvl
	}

	return Grant{
		Experience: account.Experience,
		Level:      account.Level,
		LeveledUp:  account.Level > before,
	}
}

// Update returns the profile update that persists a grant
func (g Grant) Update() domain.ProfileUpdate {
	xp, lvl := g.Experience, g.Level
	return domain.ProfileUpdate{Experience: &xp, Level: &lvl}
}

// DailyBonusScaling is the level-dependent part of the daily bonus
func DailyBonusScaling(level int) int64 {
	return int64(level) * domain.DailyLevelBonusRate
}
