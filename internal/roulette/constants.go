package roulette

// Spin rejection reasons, used as metric labels
const (
	RejectInProgress        = "in_progress"
	RejectBanned            = "banned"
	RejectInsufficientFunds = "insufficient_funds"
)

// Log messages
const (
	LogMsgSpinStarted   = "Spin started"
	LogMsgSpinCompleted = "Spin completed"
	LogMsgSpinRejected  = "Spin rejected"
	LogMsgDebitFailed   = "Spin debit failed"
	LogMsgRewardLost    = "Spin debited but reward could not be stored"
	LogMsgRereadFailed  = "Failed to reload account after spin"
	LogMsgPublishFailed = "Failed to publish spin event"
)
