package services

import "errors"

// Sentinel errors handlers translate into HTTP statuses.
var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("record not found")
	ErrNotOwner           = errors.New("not the owner")
)
