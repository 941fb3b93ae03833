package model

import "errors"

// Service-level error taxonomy. Handlers map these to HTTP status codes;
// raw storage causes never reach the wire.
var (
	ErrNoteNotFound       = errors.New("note not found")
	ErrNoteForbidden      = errors.New("access denied")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBadRequest         = errors.New("invalid request")
)
