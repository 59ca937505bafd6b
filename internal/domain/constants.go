package domain

// Economy defaults, overridable through config
const (
	// DefaultSpinCost is the price of one roulette spin
	DefaultSpinCost = 1000
	// DefaultStartingCurrency is granted once when an account is created
	DefaultStartingCurrency = 500
	// MaxAdminGrant caps a single admin currency grant
	MaxAdminGrant = 1_000_000
)

// Roulette tape layout
const (
	TapeLength       = 50
	TapeWinningIndex = 25
)

// Profile defaults used when the host platform gives us nothing
const (
	DefaultDisplayName = "User"
	DefaultHandle      = "@user"
	DefaultAvatar      = "U"
	HandlePrefix       = "@"
)

// Admin actions, used for logs and metrics labels
const (
	AdminActionGrantCurrency = "grant_currency"
	AdminActionGiveItem      = "give_item"
	AdminActionBan           = "ban"
	AdminActionUnban         = "unban"
	AdminActionGiveAll       = "give_all"
	AdminActionAudit         = "audit"
)
