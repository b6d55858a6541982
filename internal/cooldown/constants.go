package cooldown

// =============================================================================
// Action Names
// =============================================================================

const (
	// ActionDaily is the daily bonus claim
	ActionDaily = "daily"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownWithHours formats cooldown error with hours and minutes
	ErrFmtCooldownWithHours = "You can claim %s again in %dh %dm"

	// ErrFmtCooldownMinutesOnly formats cooldown error with minutes only
	ErrFmtCooldownMinutesOnly = "You can claim %s again in %dm"

	// ErrFmtCooldownUnderMinute formats cooldown error when less than a minute remains
	ErrFmtCooldownUnderMinute = "You can claim %s again in less than a minute"
)

// =============================================================================
// Time Conversion Constants
// =============================================================================

const (
	// MinutesPerHour is used for time duration calculations
	MinutesPerHour = 60
)
