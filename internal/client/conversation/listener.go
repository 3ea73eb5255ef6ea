package conversation

import (
	"context"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/client/backend"
	"github.com/sethvargo/go-retry"
)

// Listener ties one conversation key to its change-notification stream.
// Every inbound event, whatever it carries, invalidates the key; the cache
// does the refetching. A dropped stream is reopened with capped exponential
// backoff, and the cache serves its data marked stale until then.
type Listener struct {
	backend    backend.Backend
	cache      *Cache
	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewListener(b backend.Backend, cache *Cache, minBackoff, maxBackoff time.Duration) *Listener {
	return &Listener{backend: b, cache: cache, minBackoff: minBackoff, maxBackoff: maxBackoff}
}

// Listen subscribes to the key's change stream and blocks until ctx is
// canceled. One Listen call per mounted view per key; failures on this key
// never touch any other key's cache.
func (l *Listener) Listen(ctx context.Context, key string) {
	for {
		sub, err := l.subscribe(ctx, key)
		if err != nil {
			// Only a canceled context ends the retry loop.
			return
		}

		// Catch up on anything that happened while disconnected.
		l.cache.Invalidate(key)

		l.consume(sub, key)
		sub.Close()

		if ctx.Err() != nil {
			return
		}
		l.cache.MarkStale(key)
	}
}

// subscribe opens the change stream, retrying with a fresh backoff schedule
// per connection attempt series.
func (l *Listener) subscribe(ctx context.Context, key string) (backend.ChangeSubscription, error) {
	backoff := retry.WithCappedDuration(l.maxBackoff, retry.NewExponential(l.minBackoff))

	var sub backend.ChangeSubscription
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		s, err := l.backend.SubscribeChanges(ctx, key)
		if err != nil {
			return retry.RetryableError(err)
		}
		sub = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// consume invalidates the key for every received event and returns when the
// stream breaks.
func (l *Listener) consume(sub backend.ChangeSubscription, key string) {
	for {
		if _, err := sub.Recv(); err != nil {
			return
		}
		l.cache.Invalidate(key)
	}
}
