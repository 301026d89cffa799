package bootstrap

import "context"

// AuditLogger records security relevant events.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}
