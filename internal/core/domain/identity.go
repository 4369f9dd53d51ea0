package domain

// Identity is the request-scoped caller identity attached by an interceptor.
// Exactly one of the two shapes is populated: an authenticated user carries
// UserID plus the token's frozen scopes, a guest carries only GuestHash.
// It lives for the duration of one request and is never persisted.
type Identity struct {
	UserID    string
	Scopes    []string
	GuestHash string
}

// IsGuest reports whether the identity belongs to an anonymous caller.
func (i *Identity) IsGuest() bool { return i.GuestHash != "" }

// HasScope reports whether the identity carries scope s. Guests carry no
// scopes and always report false.
func (i *Identity) HasScope(s Scope) bool {
	for _, have := range i.Scopes {
		if have == s.String() {
			return true
		}
	}
	return false
}
