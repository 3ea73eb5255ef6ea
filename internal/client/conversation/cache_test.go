package conversation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/client/backend"
	"github.com/dmitrijs2005/clientportal/internal/client/models"
	"github.com/dmitrijs2005/clientportal/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements the conversation-facing slice of the backend; the
// embedded interface panics on anything else. Gate channels, when set, block
// the corresponding call until closed.
type fakeBackend struct {
	backend.Backend

	mu       sync.Mutex
	messages map[string][]*models.Message
	files    map[string][]*models.FileRecord

	listCalls map[string]int
	listErr   error
	listGate  chan struct{}

	sendErr  error
	sendGate chan struct{}

	uploadErr  error
	uploadGate chan struct{}

	subscribeCalls int
	subscribeErr   error
	subs           []*fakeSubscription
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		messages:  map[string][]*models.Message{},
		files:     map[string][]*models.FileRecord{},
		listCalls: map[string]int{},
	}
}

func (f *fakeBackend) ListMessages(ctx context.Context, participantID string) ([]*models.Message, error) {
	f.mu.Lock()
	f.listCalls[participantID]++
	gate := f.listGate
	err := f.listErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Message(nil), f.messages[participantID]...), nil
}

func (f *fakeBackend) ListFiles(ctx context.Context, participantID string) ([]*models.FileRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]*models.FileRecord(nil), f.files[participantID]...), nil
}

func (f *fakeBackend) SendMessage(ctx context.Context, participantID, content string) (*models.Message, error) {
	f.mu.Lock()
	gate := f.sendGate
	err := f.sendErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}

	m := &models.Message{ID: uuid.NewString(), SenderIsClient: true, Content: content, CreatedAt: time.Now()}
	f.mu.Lock()
	f.messages[participantID] = append(f.messages[participantID], m)
	f.mu.Unlock()
	return m, nil
}

func (f *fakeBackend) UploadFile(ctx context.Context, participantID, fileName string, data []byte) (*models.FileRecord, error) {
	f.mu.Lock()
	gate := f.uploadGate
	err := f.uploadErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}

	r := &models.FileRecord{ID: uuid.NewString(), Name: fileName, Size: int64(len(data)), CreatedAt: time.Now()}
	f.mu.Lock()
	f.files[participantID] = append(f.files[participantID], r)
	f.mu.Unlock()
	return r, nil
}

type fakeSubscription struct {
	ctx    context.Context
	events chan *backend.ChangeEvent
	fail   chan struct{}
	closed chan struct{}
	once   sync.Once
}

func (s *fakeSubscription) Recv() (*backend.ChangeEvent, error) {
	select {
	case ev := <-s.events:
		return ev, nil
	case <-s.fail:
		return nil, common.ErrorUnavailable
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	case <-s.closed:
		return nil, common.ErrorUnavailable
	}
}

func (s *fakeSubscription) Close() {
	s.once.Do(func() { close(s.closed) })
}

func (f *fakeBackend) SubscribeChanges(ctx context.Context, participantID string) (backend.ChangeSubscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.subscribeCalls++
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}

	s := &fakeSubscription{
		ctx:    ctx,
		events: make(chan *backend.ChangeEvent, 8),
		fail:   make(chan struct{}),
		closed: make(chan struct{}),
	}
	f.subs = append(f.subs, s)
	return s, nil
}

func (f *fakeBackend) listCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls[key]
}

func (f *fakeBackend) seedMessage(key, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[key] = append(f.messages[key], &models.Message{
		ID: uuid.NewString(), Content: content, CreatedAt: time.Now(),
	})
}

func waitForFreshness(t *testing.T, c *Cache, key string, want Freshness) Snapshot {
	t.Helper()
	var snap Snapshot
	require.Eventually(t, func() bool {
		snap = c.Get(key)
		return snap.Freshness == want
	}, time.Second, time.Millisecond)
	return snap
}

func TestGet_TriggersFetchAndConverges(t *testing.T) {
	b := newFakeBackend()
	b.seedMessage("p1", "hello")
	c := NewCache(b)

	snap := c.Get("p1")
	assert.Equal(t, Fetching, snap.Freshness)
	assert.Empty(t, snap.Messages)

	snap = waitForFreshness(t, c, "p1", Valid)
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, "hello", snap.Messages[0].Content)
	assert.Equal(t, 1, b.listCount("p1"), "a valid snapshot must not refetch")
}

func TestInvalidate_DuringFetch_CoalescesToOneFollowUp(t *testing.T) {
	b := newFakeBackend()
	b.seedMessage("p1", "hello")
	b.listGate = make(chan struct{})
	c := NewCache(b)

	c.Get("p1")
	require.Eventually(t, func() bool { return b.listCount("p1") == 1 }, time.Second, time.Millisecond)

	// Several invalidations arrive while the first fetch is blocked.
	c.Invalidate("p1")
	c.Invalidate("p1")
	c.Invalidate("p1")

	close(b.listGate)

	waitForFreshness(t, c, "p1", Valid)
	assert.Equal(t, 2, b.listCount("p1"), "coalesced invalidations must cause exactly one follow-up fetch")
}

func TestInvalidate_WhenIdle_SchedulesRefetch(t *testing.T) {
	b := newFakeBackend()
	c := NewCache(b)

	waitForFreshness(t, c, "p1", Valid)

	b.seedMessage("p1", "new")
	c.Invalidate("p1")

	snap := waitForFreshness(t, c, "p1", Valid)
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, 2, b.listCount("p1"))
}

func TestFetchFailure_ServesPreviousDataMarkedStale(t *testing.T) {
	b := newFakeBackend()
	b.seedMessage("p1", "hello")
	c := NewCache(b)

	waitForFreshness(t, c, "p1", Valid)

	b.mu.Lock()
	b.listErr = common.ErrorUnavailable
	b.mu.Unlock()

	c.Invalidate("p1")

	snap := waitForFreshness(t, c, "p1", Stale)
	require.ErrorIs(t, snap.Err, common.ErrorUnavailable)
	require.Len(t, snap.Messages, 1, "stale data keeps serving")
	assert.Equal(t, "hello", snap.Messages[0].Content)
}

func TestFetchFailure_QueuedInvalidationStillRefetches(t *testing.T) {
	b := newFakeBackend()
	b.seedMessage("p1", "hello")
	c := NewCache(b)

	waitForFreshness(t, c, "p1", Valid)

	gate := make(chan struct{})
	b.mu.Lock()
	b.listErr = common.ErrorUnavailable
	b.listGate = gate
	b.mu.Unlock()

	c.Invalidate("p1")
	require.Eventually(t, func() bool { return b.listCount("p1") == 2 }, time.Second, time.Millisecond)

	// A second invalidation queues behind the fetch that is about to fail.
	c.Invalidate("p1")

	b.mu.Lock()
	b.listErr = nil
	b.listGate = nil
	b.mu.Unlock()
	close(gate)

	snap := waitForFreshness(t, c, "p1", Valid)
	assert.NoError(t, snap.Err)
	assert.Equal(t, 3, b.listCount("p1"), "the queued invalidation must still get its follow-up fetch")
}

func TestMount_RemountDuringFetch_StillConverges(t *testing.T) {
	b := newFakeBackend()
	b.seedMessage("p1", "hello")
	gate := make(chan struct{})
	b.listGate = gate
	c := NewCache(b)

	c.Mount(context.Background(), "p1")
	c.Get("p1")
	require.Eventually(t, func() bool { return b.listCount("p1") == 1 }, time.Second, time.Millisecond)

	// The view reopens while the first load is still in flight.
	c.Mount(context.Background(), "p1")

	b.mu.Lock()
	b.listGate = nil
	b.mu.Unlock()
	close(gate)

	snap := waitForFreshness(t, c, "p1", Valid)
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, 2, b.listCount("p1"), "remounting must restart the orphaned load")
}

func TestFetchFailure_IsolatedPerKey(t *testing.T) {
	b := newFakeBackend()
	b.seedMessage("good", "hi")
	c := NewCache(b)

	waitForFreshness(t, c, "good", Valid)

	b.mu.Lock()
	b.listErr = common.ErrorUnavailable
	b.mu.Unlock()

	c.Invalidate("bad")
	require.Eventually(t, func() bool { return c.Get("bad").Err != nil }, time.Second, time.Millisecond)

	snap := c.Get("good")
	assert.Equal(t, Valid, snap.Freshness)
	assert.NoError(t, snap.Err)
}

func TestUnmount_DropsEntryAndOrphansResult(t *testing.T) {
	b := newFakeBackend()
	b.seedMessage("p1", "hello")
	b.listGate = make(chan struct{})
	c := NewCache(b)

	c.Mount(context.Background(), "p1")
	c.Get("p1")
	require.Eventually(t, func() bool { return b.listCount("p1") == 1 }, time.Second, time.Millisecond)

	c.Unmount("p1")
	close(b.listGate)

	// The orphaned fetch result must not resurrect the entry.
	b.mu.Lock()
	b.listGate = nil
	b.mu.Unlock()

	snap := c.Get("p1")
	assert.NotEqual(t, Valid, snap.Freshness)
	require.Eventually(t, func() bool { return b.listCount("p1") >= 2 }, time.Second, time.Millisecond)
}

func TestSubscribe_NotifiedOnFetchCompletion(t *testing.T) {
	b := newFakeBackend()
	b.seedMessage("p1", "hello")
	c := NewCache(b)

	ch, cancel := c.Subscribe()
	defer cancel()

	c.Get("p1")

	require.Eventually(t, func() bool {
		select {
		case snap := <-ch:
			return snap.Key == "p1" && snap.Freshness == Valid
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}
