// Package repository defines error values that are reused across
// multiple repositories. These sentinels let the handler layer
// distinguish failure scenarios without string matching.
package repository

import "errors"

// ErrEmailExists is returned when registering a user with an email
// address that is already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrBadTransition is returned when a reservation status update is not
// permitted, e.g. confirming a cancelled reservation.
var ErrBadTransition = errors.New("invalid status transition")
