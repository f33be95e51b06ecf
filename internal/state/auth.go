package state

import (
	"context"

	"linkedlist-backend/internal/auth"
)

// AuthState is the identity as last reported by the server
type AuthState struct {
	Authenticated bool
	Loading       bool
	User          *auth.MeUser
}

// AuthStore tracks whether the client holds a valid session
type AuthStore struct {
	*Observable[AuthState]
	api API
}

func NewAuthStore(api API) *AuthStore {
	return &AuthStore{
		Observable: NewObservable(AuthState{}),
		api:        api,
	}
}

// Refresh asks the server who the session belongs to. Any failure leaves
// the store anonymous.
func (s *AuthStore) Refresh(ctx context.Context) error {
	s.Update(func(st AuthState) AuthState {
		st.Loading = true
		return st
	})

	me, err := s.api.Me(ctx)
	if err != nil {
		s.Set(AuthState{})
		return err
	}
	s.Set(AuthState{Authenticated: me.Authenticated, User: me.User})
	return nil
}

// Logout ends the session. On failure the previous identity is kept.
func (s *AuthStore) Logout(ctx context.Context) error {
	previous := s.Get()
	s.Update(func(st AuthState) AuthState {
		st.Loading = true
		return st
	})

	if err := s.api.Logout(ctx); err != nil {
		previous.Loading = false
		s.Set(previous)
		return err
	}
	s.Set(AuthState{})
	return nil
}
