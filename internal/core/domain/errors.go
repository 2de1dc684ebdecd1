package domain

import "errors"

var (
	// ErrInvalidCredentials covers unknown username, wrong password and any
	// unexpected login failure. Callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already exists")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrTaskNotFound     = errors.New("task not found")

	// ErrProtectedRole guards the PM deletion invariant: employees holding
	// the PM role cannot be removed regardless of who asks.
	ErrProtectedRole = errors.New("cannot delete a project manager")

	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidClassification = errors.New("invalid classification")
	ErrInvalidProjectStatus  = errors.New("invalid project status")
	ErrInvalidTaskStatus     = errors.New("invalid task status")
)
