package domain

import "time"

// GuestIdentity is an anonymous credential: a pre-provisioned hash with its
// own expiry, unrelated to users, roles or scopes. This subsystem only
// validates guest hashes; it never issues them.
type GuestIdentity struct {
	ID        string
	Hash      string
	ExpiresAt time.Time
}

// IsExpired reports whether the hash is past its expiry at instant now.
func (g *GuestIdentity) IsExpired(now time.Time) bool {
	return now.After(g.ExpiresAt)
}
