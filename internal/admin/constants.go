package admin

import "time"

// MatchMode selects how a caller handle is compared with the allow-list
type MatchMode string

const (
	MatchCaseInsensitive MatchMode = "case_insensitive"
	MatchExact           MatchMode = "exact"
)

// DenialMode selects what a non-admin caller is told
type DenialMode string

const (
	// DenyNotFound reports denial exactly like an unknown account
	DenyNotFound DenialMode = "not_found"
	// DenyUnauthorized reports a distinct authorization failure
	DenyUnauthorized DenialMode = "unauthorized"
)

// Authorization cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = time.Minute
)

// Log messages
const (
	LogMsgAdminDenied      = "Admin action denied"
	LogMsgAdminAction      = "Admin action applied"
	LogMsgAdminFailed      = "Admin action failed"
	LogMsgBulkGrantPartial = "Bulk item grant stopped early"
	LogMsgPublishFailed    = "Failed to publish admin event"
)
