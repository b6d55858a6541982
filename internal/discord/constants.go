package discord

// =============================================================================
// Component Custom IDs
// =============================================================================

const (
	customIDSeparator = ":"

	// ComponentDuelAccept prefixes the accept button's custom id; the suffix is the duel id
	ComponentDuelAccept = "duel_accept"
	// ComponentDuelDecline prefixes the decline button's custom id
	ComponentDuelDecline = "duel_decline"
)

// =============================================================================
// Option Names
// =============================================================================

const (
	OptionAmount   = "amount"
	OptionUser     = "user"
	OptionSide     = "side"
	OptionColor    = "color"
	OptionGame     = "game"
	OptionOpponent = "opponent"
	OptionItem     = "item"
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgBotReady           = "Bot is ready"
	LogMsgSessionCloseFailed = "Failed to close Discord session"
	LogMsgUnknownCommand     = "Received unknown command"
	LogMsgUnknownComponent   = "Received unknown component interaction"
	LogMsgCheckingCommands   = "Checking Discord commands"
	LogMsgCommandsUnchanged  = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdating   = "Commands changed, updating"
	LogMsgCommandsUpdated    = "Commands updated successfully"
	LogMsgEditFailed         = "Failed to edit interaction response"
	LogMsgFollowupFailed     = "Failed to send followup message"
	LogMsgDeferFailed        = "Failed to send deferred response"
	LogMsgCommandRejected    = "Command rejected"
	LogMsgCommandFailed      = "Command failed"
	LogMsgActivityFailed     = "Failed to record chat activity"
	LogMsgAuthorLookupFailed = "Failed to look up reacted message author"
	LogMsgHealthServerStart  = "Starting Discord health server"
	LogMsgHealthServerFailed = "Discord health server failed"
)
