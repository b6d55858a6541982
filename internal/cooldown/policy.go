// Package cooldown decides daily bonus eligibility and computes the bonus amount.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/leveling"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/random"
)

// Eligibility is the answer to "may this user claim now"
type Eligibility struct {
	Eligible  bool
	Remaining time.Duration
}

// Policy evaluates cooldown windows. It holds no state; callers persist the claim
// timestamp in the same transaction as the credit.
type Policy struct {
	config Config
}

// NewPolicy creates a policy with the given configuration
func NewPolicy(config Config) *Policy {
	return &Policy{config: config}
}

// CheckEligible reports whether an action last performed at lastClaim may run at now.
// A zero lastClaim means never performed.
func (p *Policy) CheckEligible(ctx context.Context, action string, lastClaim, now time.Time) Eligibility {
	if p.config.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action)
		return Eligibility{Eligible: true}
	}
	return CheckEligible(lastClaim, now, p.config.GetCooldownDuration(action))
}

// Enforce returns ErrOnCooldown when the action is not yet eligible
func (p *Policy) Enforce(ctx context.Context, action string, lastClaim, now time.Time) error {
	e := p.CheckEligible(ctx, action, lastClaim, now)
	if !e.Eligible {
		return ErrOnCooldown{Action: action, Remaining: e.Remaining}
	}
	return nil
}

// CheckEligible is the pure window check: eligible iff lastClaim is zero or
// now - lastClaim >= window
func CheckEligible(lastClaim, now time.Time, window time.Duration) Eligibility {
	if lastClaim.IsZero() {
		return Eligibility{Eligible: true}
	}

	elapsed := now.Sub(lastClaim)
	if elapsed >= window {
		return Eligibility{Eligible: true}
	}

	return Eligibility{Eligible: false, Remaining: window - elapsed}
}

// HoursMinutes splits a remaining duration into whole hours and minutes for display
func HoursMinutes(d time.Duration) (hours, minutes int) {
	if d <= 0 {
		return 0, 0
	}
	total := int(d / time.Minute)
	return total / MinutesPerHour, total % MinutesPerHour
}

// DailyBonus returns 100 + IntRange(0,49) + level*10 using one draw
func DailyBonus(src random.Source, level int) int64 {
	roll := random.IntRange(src, 0, domain.DailyBonusSpread-1)
	return domain.DailyBonusBase + roll + leveling.DailyBonusScaling(level)
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	hours, minutes := HoursMinutes(e.Remaining)

	switch {
	case hours > 0:
		return fmt.Sprintf(ErrFmtCooldownWithHours, e.Action, hours, minutes)
	case minutes > 0:
		return fmt.Sprintf(ErrFmtCooldownMinutesOnly, e.Action, minutes)
	default:
		return fmt.Sprintf(ErrFmtCooldownUnderMinute, e.Action)
	}
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Unwrap lets callers classify with errors.Is(err, domain.ErrOnCooldown)
func (e ErrOnCooldown) Unwrap() error {
	return domain.ErrOnCooldown
}
