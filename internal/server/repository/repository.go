package repository

import (
	"errors"
	"time"
)

// ErrNotFound indicates the row does not exist or is not visible to the caller.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail indicates a registration attempt with an email already in use.
var ErrDuplicateEmail = errors.New("email already registered")

// Post is a stored post row joined with its owner's email.
type Post struct {
	ID         string
	OwnerID    string
	OwnerEmail string
	FileType   string
	URL        string
	ObjectKey  string
	Caption    string
	CreatedAt  time.Time
}
