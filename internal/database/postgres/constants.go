package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised when currency would go below zero
	PgErrorCodeCheckViolation = "23514"
)

// Operation names used in error wrapping and persistence metrics
const (
	OpGetProfile            = "get_profile"
	OpGetProfileByHandle    = "get_profile_by_handle"
	OpCreateProfile         = "create_profile"
	OpUpdateProfile         = "update_profile"
	OpGetInventory          = "get_inventory"
	OpAddInventoryItem      = "add_inventory_item"
	OpRemoveInventoryItem   = "remove_inventory_item"
	OpIsAdmin               = "is_admin"
	OpListAdmins            = "list_admins"
	OpAddAdmin              = "add_admin"
	OpAdjustCurrency        = "adjust_currency"
	OpSetBanned             = "set_banned"
	OpAddInventoryItemToAll = "add_inventory_item_to_all"
	OpPing                  = "ping"
)

const profileColumns = `user_id, name, username, avatar, currency,
	total_spins, items_owned, days_active, trade_count,
	banned, created_at, updated_at, last_seen_at`

// userIDByHandle takes utils.FoldHandle(handle) as $1, lowest id wins on collisions
const userIDByHandle = `(SELECT user_id FROM user_profiles WHERE username_folded = $1 ORDER BY user_id LIMIT 1)`
