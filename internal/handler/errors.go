package handler

// Generic HTTP error messages for client responses.
// Infrastructure failures never expose internal details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingDuelID         = "Missing duel ID"
	ErrMsgInvalidDuelID         = "Invalid duel ID"
	ErrMsgMissingUserID         = "Missing user ID"
	ErrMsgInvalidItemID         = "Invalid item ID"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
)

// Success messages
const (
	MsgDailyClaimed  = "Daily bonus claimed"
	MsgTransferDone  = "Transfer complete"
	MsgItemPurchased = "Item purchased"
	MsgDuelProposed  = "Duel challenge sent!"
	MsgDuelCompleted = "Duel completed!"
	MsgDuelDeclined  = "Duel declined"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgServiceRejected  = "Request rejected"
	LogMsgServiceFailed    = "Request failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
)

// Header names
const (
	HeaderRetryAfter = "Retry-After"
)
