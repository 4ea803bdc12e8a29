package store

import (
	"errors"
	"sync"

	"back2me/internal/model"
)

// Domain errors surfaced to clients verbatim.
var (
	ErrDuplicateEmail     = errors.New("Email already registered")
	ErrDuplicateUsername  = errors.New("Username already taken")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailNotFound      = errors.New("Email not found")
	ErrPostNotFound       = errors.New("Post not found")
)

// Store owns the three record collections. All collections are append-only:
// no operation mutates or deletes an existing record, so every accessor can
// hand out copies without aliasing concerns. One RWMutex guards all three
// collections; ids come from per-collection monotonic sequences rather than
// collection length, so they survive any future delete support.
type Store struct {
	mu sync.RWMutex

	users    []model.User
	posts    []model.Post
	messages []model.Message

	userIDs    idSequence
	postIDs    idSequence
	messageIDs idSequence
}

func New() *Store {
	return &Store{}
}
