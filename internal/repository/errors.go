package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when no task matches the identifier
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserNotFound is returned when an update targets a missing user
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the unique username index rejects an insert
	ErrUsernameTaken = errors.New("username already taken")
)
