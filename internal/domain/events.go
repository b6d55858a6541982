package domain

// Event type constants, used as metric labels and log keys.
//
// Event types follow the pattern: <entity>.<action> (e.g., "duel.resolved")
const (
	EventTypeGamePlayed     = "game.played"
	EventTypeDailyClaimed   = "daily.claimed"
	EventTypeTransfer       = "points.transferred"
	EventTypeItemBought     = "item.bought"
	EventTypeMessageEarned  = "activity.message"
	EventTypeReactionEarned = "activity.reaction"
	EventTypeDuelProposed   = "duel.proposed"
	EventTypeDuelResolved   = "duel.resolved"
	EventTypeDuelDeclined   = "duel.declined"
	EventTypeDuelExpired    = "duel.expired"
	EventTypeLevelUp        = "account.level_up"
)
