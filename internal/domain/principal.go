package domain

import "time"

// Principal is the authenticated caller attached to a request.
type Principal struct {
	ID        int64
	Email     string
	Roles     []string
	TokenID   string
	ExpiresAt time.Time
}
