package user

// Log messages
const (
	LogMsgAccountCreated   = "Account created"
	LogMsgAccountRefreshed = "Account identity refreshed"
	LogMsgSellRequested    = "Sell requested"
	LogMsgItemSold         = "Item sold"
	LogMsgSellCreditFailed = "Item removed but credit failed"
	LogMsgPublishFailed    = "Failed to publish event"
	LogMsgPersistFailed    = "Persistence call failed"
)

// Error message formats
const (
	ErrMsgUserIDRequired = "user id must be positive"
)
