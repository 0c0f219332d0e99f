package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidUsername   = errors.New("invalid username")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidPassword   = errors.New("invalid password")

	// Meeting errors
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrEmptyNotes      = errors.New("meeting notes are empty")

	// Action item errors
	ErrActionItemNotFound = errors.New("action item not found")
	ErrInvalidPriority    = errors.New("priority must be one of High, Medium, Low")
	ErrInvalidStatus      = errors.New("status must be one of To Do, In Progress, Done")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidRequest = errors.New("invalid request")
)
