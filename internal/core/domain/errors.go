package domain

import "errors"

// Sentinel errors shared across services, repositories and the HTTP error
// handler. Repositories translate storage-level misses into these so the
// layers above never see driver errors.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")

	// ErrTokenNotFound also covers corrupt stored tokens: an unreadable
	// credential is treated as absent, never as a server fault.
	ErrTokenNotFound = errors.New("token not found")
	// ErrGuestNotFound likewise covers corrupt stored guest hashes.
	ErrGuestNotFound     = errors.New("guest identity not found")
	ErrCredentialExpired = errors.New("credential expired")

	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrReviewNotFound   = errors.New("review not found")
	ErrCartNotFound     = errors.New("cart not found")
)
