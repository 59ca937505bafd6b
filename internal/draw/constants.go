package draw

// Audit limits
const (
	MinAuditTrials     = 100
	MaxAuditTrials     = 10_000_000
	DefaultAuditTrials = 100_000
	AuditProgressStep  = 10_000

	// DefaultAuditAlpha is the significance level used by the audit CLI and admin endpoint
	DefaultAuditAlpha = 0.001
)
