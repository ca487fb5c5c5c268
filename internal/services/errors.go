package services

import "errors"

var (
	// ErrNotFound is returned when a referenced trip, customer or user
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSeatAlreadySold is returned when a sale would issue a second
	// sold ticket for the same (trip, seat) pair.
	ErrSeatAlreadySold = errors.New("seat already sold")

	// ErrSeatOutOfRange is returned when the requested seat number is
	// outside 1..bus capacity for the trip's bus.
	ErrSeatOutOfRange = errors.New("seat number out of range")

	// ErrInvalidAmount is returned when the charged amount is not a
	// positive value.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidCredentials covers unknown users, inactive users and
	// wrong passwords alike, so responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a bearer token fails signature or
	// expiry validation.
	ErrInvalidToken = errors.New("invalid token")
)
