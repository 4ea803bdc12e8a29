package store

import (
	"back2me/internal/auth"
	"back2me/internal/model"
)

// RegisterUser appends a new user with a hashed password. Username and email
// must be unique across the collection (exact, case-sensitive match).
func (s *Store) RegisterUser(username, email, password string, now int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return model.User{}, ErrDuplicateEmail
		}
	}
	for _, u := range s.users {
		if u.Username == username {
			return model.User{}, ErrDuplicateUsername
		}
	}

	user := model.User{
		ID:             s.userIDs.next(),
		Username:       username,
		Email:          email,
		PasswordDigest: auth.HashPassword(password),
		CreatedAt:      now,
	}
	s.users = append(s.users, user)
	return user, nil
}

// Authenticate finds the first user with the given email and checks the
// password digest. Unknown email and wrong password both return
// ErrInvalidCredentials so callers cannot tell which check failed.
func (s *Store) Authenticate(email, password string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email != email {
			continue
		}
		if !auth.VerifyPassword(password, u.PasswordDigest) {
			return model.User{}, ErrInvalidCredentials
		}
		return u, nil
	}
	return model.User{}, ErrInvalidCredentials
}

// FindUserByEmail reports whether a user with the given email exists.
func (s *Store) FindUserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

// userRefLocked resolves a user id to its public projection. Caller must
// hold at least a read lock.
func (s *Store) userRefLocked(id int64) *model.UserRef {
	for _, u := range s.users {
		if u.ID == id {
			return &model.UserRef{ID: u.ID, Username: u.Username}
		}
	}
	return nil
}
