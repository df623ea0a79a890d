package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates the upstream API rejected the credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstream indicates the upstream API failed or was unreachable.
	ErrUpstream = errors.New("upstream unavailable")
)
