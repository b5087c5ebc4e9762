package domain

import "errors"

var (
	// ErrInvariant marks a broken rule upstream; the round cannot continue.
	ErrInvariant = errors.New("invariant violated")
	// ErrConfig marks an invalid round configuration or declaration.
	ErrConfig = errors.New("invalid configuration")
)
