package bootstrap

import "context"

// AuditLog is a lifecycle-level audit entry (startup, shutdown, migration).
// Request-level auditing belongs to middleware, not here.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
