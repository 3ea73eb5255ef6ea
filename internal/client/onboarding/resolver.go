// Package onboarding resolves and caches whether an identity has completed
// the one-time company setup. The result gates access to protected screens,
// so lookups are coalesced, cached for the session, and never allowed to
// flap from completed back to incomplete on a bad read.
package onboarding

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/client/backend"
	"github.com/dmitrijs2005/clientportal/internal/client/models"
	"github.com/dmitrijs2005/clientportal/internal/client/observe"
	"golang.org/x/sync/singleflight"
)

type Resolver struct {
	backend  backend.Backend
	group    singleflight.Group
	notifier *observe.Notifier[*models.OnboardingStatus]

	mu    sync.Mutex
	cache map[string]*models.OnboardingStatus
}

func NewResolver(b backend.Backend) *Resolver {
	return &Resolver{
		backend:  b,
		notifier: observe.NewNotifier[*models.OnboardingStatus](),
		cache:    make(map[string]*models.OnboardingStatus),
	}
}

// Subscribe registers for status changes; the returned function
// unsubscribes.
func (r *Resolver) Subscribe() (<-chan *models.OnboardingStatus, func()) {
	return r.notifier.Subscribe()
}

// Resolve returns the onboarding status of identityID. The first call per
// identity performs exactly one backend lookup no matter how many callers
// arrive concurrently; afterwards the cached result is served for the rest
// of the session, including a recorded failure. Refresh is the only way to
// force a new lookup.
func (r *Resolver) Resolve(ctx context.Context, identityID string) *models.OnboardingStatus {
	r.mu.Lock()
	if st, ok := r.cache[identityID]; ok {
		r.mu.Unlock()
		return st
	}
	r.mu.Unlock()

	return r.fetch(ctx, identityID)
}

// Refresh bypasses the cache and performs a fresh lookup. Invoked after the
// onboarding completion action succeeds so completed promotes immediately.
// A lookup already in flight cannot satisfy a refresh, its result predates
// whatever prompted the refresh, so the coalescing key is dropped first.
func (r *Resolver) Refresh(ctx context.Context, identityID string) *models.OnboardingStatus {
	r.group.Forget(identityID)
	return r.fetch(ctx, identityID)
}

// Forget drops the cached status, used on sign-out.
func (r *Resolver) Forget(identityID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cache, identityID)
}

func (r *Resolver) fetch(ctx context.Context, identityID string) *models.OnboardingStatus {
	v, _, _ := r.group.Do(identityID, func() (interface{}, error) {
		st, err := r.backend.FetchOnboardingStatus(ctx, identityID)
		if err != nil {
			// Fail closed: an unreadable status reads as incomplete,
			// with the failure recorded for the caller to surface.
			st = &models.OnboardingStatus{
				IdentityID:    identityID,
				Completed:     false,
				LastCheckedAt: time.Now(),
				Err:           err,
			}
		}
		return r.store(st), nil
	})
	return v.(*models.OnboardingStatus)
}

// store merges the fresh status into the cache. Completed is monotonic per
// identity: once observed true it stays true across later failed or stale
// reads, which prevents redirect flapping toward the onboarding screen.
func (r *Resolver) store(st *models.OnboardingStatus) *models.OnboardingStatus {
	r.mu.Lock()

	if prev, ok := r.cache[st.IdentityID]; ok && prev.Completed && !st.Completed {
		st = &models.OnboardingStatus{
			IdentityID:    st.IdentityID,
			Completed:     true,
			CompanyID:     prev.CompanyID,
			LastCheckedAt: st.LastCheckedAt,
			Err:           st.Err,
		}
	}
	r.cache[st.IdentityID] = st
	r.mu.Unlock()

	r.notifier.Notify(st)
	return st
}
