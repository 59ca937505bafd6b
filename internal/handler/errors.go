package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidUserID         = "user_id must be a positive integer"
)

// User-facing notification text per error category and specific error
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUnavailableError    = "Could not reach the server. Please try again."
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgNotFoundError       = "Not found"
	ErrMsgUnauthorizedError   = "You are not allowed to do that"
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	ErrMsgAccountNotFoundError  = "User not found"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgNotInInventoryError   = "You don't have that item"
	ErrMsgNotEnoughMoneyError   = "Not enough money"
	ErrMsgSpinInProgressError   = "A spin is already in progress"
	ErrMsgAccountBannedError    = "This account is banned"
	ErrMsgInvalidAmountError    = "Invalid amount"
	ErrMsgHandleRequiredError   = "A username is required"
	ErrMsgCatalogMisconfigError = "Roulette is not available right now"
)

// Success messages
const (
	MsgCurrencyGranted = "Currency granted"
	MsgItemGiven       = "Item given"
	MsgAccountBanned   = "Account banned"
	MsgAccountUnbanned = "Account unbanned"
	MsgItemGivenToAll  = "Item given to all accounts"
	MsgItemSold        = "Item sold"
)
