// Package session owns the signed-in state of the client. It is the single
// writer of that state: sign-in, sign-out, and the startup settling pass all
// go through here, and every other component reads snapshots or subscribes
// for changes.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/client/backend"
	"github.com/dmitrijs2005/clientportal/internal/client/models"
	"github.com/dmitrijs2005/clientportal/internal/client/observe"
	"github.com/dmitrijs2005/clientportal/internal/client/store"
)

const persistTimeout = 5 * time.Second

// State is an immutable snapshot of the session. Identity is nil while
// unauthenticated; Settling is true while credentials are being restored at
// startup or exchanged during sign-in, and no gating decision may be made
// while it is.
type State struct {
	Identity *models.Identity
	Settling bool
}

// Authenticated reports whether an identity is present.
func (s State) Authenticated() bool {
	return s.Identity != nil
}

type Session struct {
	mu       sync.Mutex
	backend  backend.Backend
	tokens   store.Repository
	state    State
	notifier *observe.Notifier[State]
}

// New creates a Session in the settling state and registers for token
// rotations so a refreshed pair is persisted before the old one becomes
// useless.
func New(b backend.Backend, tokens store.Repository) *Session {
	s := &Session{
		backend:  b,
		tokens:   tokens,
		state:    State{Settling: true},
		notifier: observe.NewNotifier[State](),
	}
	b.OnTokensChanged(s.persistTokens)
	return s
}

// persistTokens saves the pair best effort. A write failure only costs the
// restored session on next start, never the current one.
func (s *Session) persistTokens(accessToken, refreshToken string) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	_ = s.tokens.Set(ctx, store.KeyAccessToken, []byte(accessToken))
	_ = s.tokens.Set(ctx, store.KeyRefreshToken, []byte(refreshToken))
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	s.notifier.Notify(st)
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers for state changes; the returned function unsubscribes.
func (s *Session) Subscribe() (<-chan State, func()) {
	return s.notifier.Subscribe()
}

// Settle restores persisted credentials and resolves the identity behind
// them. It always leaves the session settled: on any failure, or when no
// credentials are stored, the state is simply unauthenticated. Settle
// returns the resulting state.
func (s *Session) Settle(ctx context.Context) State {

	accessToken, err := s.tokens.Get(ctx, store.KeyAccessToken)
	if err != nil || len(accessToken) == 0 {
		st := State{}
		s.setState(st)
		return st
	}
	refreshToken, err := s.tokens.Get(ctx, store.KeyRefreshToken)
	if err != nil {
		st := State{}
		s.setState(st)
		return st
	}

	s.backend.SetTokens(string(accessToken), string(refreshToken))

	identity, err := s.backend.FetchIdentity(ctx)
	if err != nil {
		// Unreachable or rejected credentials both settle as signed out.
		s.backend.SetTokens("", "")
		st := State{}
		s.setState(st)
		return st
	}

	st := State{Identity: identity}
	s.setState(st)
	return st
}

// Register creates an account. It does not sign the user in.
func (s *Session) Register(ctx context.Context, email string, password []byte) (string, error) {
	return s.backend.Register(ctx, email, password)
}

// SignIn authenticates and settles the identity. The settling window spans
// the whole exchange, so observers never act on a half-established session;
// on failure the previous state is restored.
func (s *Session) SignIn(ctx context.Context, email string, password []byte) error {

	prev := s.Snapshot()
	s.setState(State{Identity: prev.Identity, Settling: true})

	if err := s.backend.Login(ctx, email, password); err != nil {
		s.setState(prev)
		return err
	}

	identity, err := s.backend.FetchIdentity(ctx)
	if err != nil {
		s.setState(prev)
		return err
	}

	s.setState(State{Identity: identity})
	return nil
}

// SignOut drops the identity and both the live and persisted token pairs.
func (s *Session) SignOut(ctx context.Context) {
	s.backend.SetTokens("", "")
	_ = s.tokens.Clear(ctx)
	s.setState(State{})
}
