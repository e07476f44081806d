package services

import (
	"errors"
	"strings"
)

var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrScreeningNotFound = errors.New("screening not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrUserNotFound      = errors.New("user not found")
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNoAccount      = errors.New("there is no account associated with this username - please sign up")
	ErrBadCredentials = errors.New("incorrect username or password")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already registered")
)

// ValidationError reports a rejected form input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ModerationError carries one message per flagged field. A post that
// trips it is never persisted.
type ModerationError struct {
	Messages []string
}

func (e *ModerationError) Error() string {
	return strings.Join(e.Messages, " ")
}
