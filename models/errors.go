package models

import "errors"

var (
	// ErrSlotConflict is returned by storage when an insert would give a
	// provider two active appointments in the same slot.
	ErrSlotConflict = errors.New("slot already booked")

	// ErrDuplicateEmail is returned by storage when the email is registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
