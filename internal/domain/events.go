package domain

// EventType identifiers published on the in-process bus
const (
	EventTypeAccountCreated  = "account.created"
	EventTypeSpinCompleted   = "roulette.spin.completed"
	EventTypeItemSold        = "item.sold"
	EventTypeCurrencyGranted = "admin.currency.granted"
	EventTypeItemGranted     = "admin.item.granted"
	EventTypeAccountBanned   = "admin.account.banned"
	EventTypeBulkItemGranted = "admin.item.granted_all"
)

// AccountCreatedPayload is published when a first contact creates an account
type AccountCreatedPayload struct {
	UserID          int64  `json:"user_id"`
	Handle          string `json:"handle"`
	StartingBalance int    `json:"starting_balance"`
	Timestamp       int64  `json:"timestamp"`
}

// SpinCompletedPayload is published once the won reward is stored
type SpinCompletedPayload struct {
	UserID    int64  `json:"user_id"`
	OutcomeID string `json:"outcome_id"`
	Rarity    Rarity `json:"rarity"`
	Cost      int    `json:"cost"`
	Value     int    `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

// ItemSoldPayload is published after a sale has been persisted
type ItemSoldPayload struct {
	UserID      int64  `json:"user_id"`
	ItemID      string `json:"item_id"`
	MoneyGained int    `json:"money_gained"`
	Timestamp   int64  `json:"timestamp"`
}

// AdminActionPayload is published for every successful admin mutation
type AdminActionPayload struct {
	Action    string `json:"action"`
	Actor     string `json:"actor"`
	Target    string `json:"target,omitempty"`
	ItemID    string `json:"item_id,omitempty"`
	Amount    int    `json:"amount,omitempty"`
	Affected  int    `json:"affected"`
	Timestamp int64  `json:"timestamp"`
}
