package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/client/backend"
	"github.com/dmitrijs2005/clientportal/internal/client/models"
	"github.com/dmitrijs2005/clientportal/internal/client/store"
	"github.com/dmitrijs2005/clientportal/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements only the methods the session touches; the embedded
// interface panics on anything else.
type fakeBackend struct {
	backend.Backend

	accessToken  string
	refreshToken string
	onTokens     func(string, string)

	identity      *models.Identity
	fetchErr      error
	loginErr      error
	loginGate     chan struct{}
	fetchCalls    int
	registeredIDs map[string]string
}

func (f *fakeBackend) OnTokensChanged(fn func(string, string)) { f.onTokens = fn }

func (f *fakeBackend) SetTokens(accessToken, refreshToken string) {
	f.accessToken = accessToken
	f.refreshToken = refreshToken
}

func (f *fakeBackend) Tokens() (string, string) { return f.accessToken, f.refreshToken }

func (f *fakeBackend) Login(ctx context.Context, email string, password []byte) error {
	if f.loginGate != nil {
		<-f.loginGate
	}
	if f.loginErr != nil {
		return f.loginErr
	}
	f.accessToken = "access-1"
	f.refreshToken = "refresh-1"
	if f.onTokens != nil {
		f.onTokens(f.accessToken, f.refreshToken)
	}
	return nil
}

func (f *fakeBackend) Register(ctx context.Context, email string, password []byte) (string, error) {
	if f.registeredIDs == nil {
		f.registeredIDs = map[string]string{}
	}
	f.registeredIDs[email] = "id-" + email
	return "id-" + email, nil
}

func (f *fakeBackend) FetchIdentity(ctx context.Context) (*models.Identity, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.identity, nil
}

type fakeTokenRepo struct {
	values map[string][]byte
	getErr error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{values: map[string][]byte{}}
}

func (r *fakeTokenRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.values[key], nil
}

func (r *fakeTokenRepo) Set(ctx context.Context, key string, value []byte) error {
	r.values[key] = value
	return nil
}

func (r *fakeTokenRepo) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
	return nil
}

func (r *fakeTokenRepo) Clear(ctx context.Context) error {
	r.values = map[string][]byte{}
	return nil
}

func TestNew_StartsSettling(t *testing.T) {
	s := New(&fakeBackend{}, newFakeTokenRepo())

	st := s.Snapshot()
	assert.True(t, st.Settling)
	assert.False(t, st.Authenticated())
}

func TestSettle_NoStoredTokens_SignedOut(t *testing.T) {
	b := &fakeBackend{identity: &models.Identity{ID: "u1", Email: "a@b.c"}}
	s := New(b, newFakeTokenRepo())

	st := s.Settle(context.Background())

	assert.False(t, st.Settling)
	assert.False(t, st.Authenticated())
	assert.Zero(t, b.fetchCalls, "no identity lookup without stored tokens")
}

func TestSettle_StoredTokens_RestoresIdentity(t *testing.T) {
	b := &fakeBackend{identity: &models.Identity{ID: "u1", Email: "a@b.c"}}
	repo := newFakeTokenRepo()
	repo.values[store.KeyAccessToken] = []byte("acc")
	repo.values[store.KeyRefreshToken] = []byte("ref")

	s := New(b, repo)
	st := s.Settle(context.Background())

	require.True(t, st.Authenticated())
	assert.Equal(t, "u1", st.Identity.ID)
	assert.Equal(t, "acc", b.accessToken)
	assert.Equal(t, "ref", b.refreshToken)
}

func TestSettle_BackendFailure_SignedOut(t *testing.T) {
	b := &fakeBackend{fetchErr: common.ErrorUnavailable}
	repo := newFakeTokenRepo()
	repo.values[store.KeyAccessToken] = []byte("acc")
	repo.values[store.KeyRefreshToken] = []byte("ref")

	s := New(b, repo)
	st := s.Settle(context.Background())

	assert.False(t, st.Authenticated())
	assert.Empty(t, b.accessToken, "rejected credentials are dropped")
}

func TestSignIn_SetsIdentityAndPersistsTokens(t *testing.T) {
	b := &fakeBackend{identity: &models.Identity{ID: "u1", Email: "a@b.c"}}
	repo := newFakeTokenRepo()

	s := New(b, repo)
	require.NoError(t, s.SignIn(context.Background(), "a@b.c", []byte("pw")))

	st := s.Snapshot()
	require.True(t, st.Authenticated())
	assert.Equal(t, []byte("access-1"), repo.values[store.KeyAccessToken])
	assert.Equal(t, []byte("refresh-1"), repo.values[store.KeyRefreshToken])
}

func TestSignIn_LoginError_Propagates(t *testing.T) {
	b := &fakeBackend{loginErr: common.ErrorUnauthorized}

	s := New(b, newFakeTokenRepo())
	err := s.SignIn(context.Background(), "a@b.c", []byte("pw"))

	require.True(t, errors.Is(err, common.ErrorUnauthorized))
	st := s.Snapshot()
	assert.False(t, st.Authenticated())
	assert.False(t, st.Settling, "a failed sign-in must leave the session settled")
}

func TestSignIn_SettlesForTheDuration(t *testing.T) {
	gate := make(chan struct{})
	b := &fakeBackend{identity: &models.Identity{ID: "u1"}, loginGate: gate}

	s := New(b, newFakeTokenRepo())
	s.Settle(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.SignIn(context.Background(), "a@b.c", []byte("pw")) }()

	require.Eventually(t, func() bool { return s.Snapshot().Settling }, time.Second, time.Millisecond,
		"the sign-in exchange must be observable as settling")

	close(gate)
	require.NoError(t, <-done)

	st := s.Snapshot()
	assert.False(t, st.Settling)
	require.True(t, st.Authenticated())
	assert.Equal(t, "u1", st.Identity.ID)
}

func TestSignOut_ClearsEverything(t *testing.T) {
	b := &fakeBackend{identity: &models.Identity{ID: "u1"}}
	repo := newFakeTokenRepo()

	s := New(b, repo)
	require.NoError(t, s.SignIn(context.Background(), "a@b.c", []byte("pw")))

	s.SignOut(context.Background())

	assert.False(t, s.Snapshot().Authenticated())
	assert.Empty(t, repo.values)
	assert.Empty(t, b.accessToken)
	assert.Empty(t, b.refreshToken)
}

func TestSubscribe_NotifiedOnStateChange(t *testing.T) {
	b := &fakeBackend{identity: &models.Identity{ID: "u1"}}
	s := New(b, newFakeTokenRepo())

	ch, cancel := s.Subscribe()
	defer cancel()

	s.Settle(context.Background())

	st := <-ch
	assert.False(t, st.Settling)
}
