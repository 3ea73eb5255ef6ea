package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingCount(snap Snapshot) int {
	n := 0
	for _, m := range snap.Messages {
		if m.Pending {
			n++
		}
	}
	return n
}

func TestSubmit_SendMessage_OptimisticUntilSettled(t *testing.T) {
	b := newFakeBackend()
	b.sendGate = make(chan struct{})
	c := NewCache(b)
	coord := NewCoordinator(b, c)

	waitForFreshness(t, c, "p1", Valid)

	type result struct {
		action *PendingAction
		err    error
	}
	done := make(chan result, 1)
	go func() {
		action, err := coord.Submit(context.Background(), "p1", ActionSendMessage, Payload{Content: "hi there"})
		done <- result{action, err}
	}()

	// While the send is in flight, the optimistic entry is visible.
	require.Eventually(t, func() bool {
		snap := c.Get("p1")
		return pendingCount(snap) == 1 && snap.Messages[len(snap.Messages)-1].Content == "hi there"
	}, time.Second, time.Millisecond)

	close(b.sendGate)
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, ActionSucceeded, res.action.Status)

	// After settlement and refetch the confirmed record appears exactly
	// once, with no pending leftover.
	require.Eventually(t, func() bool {
		snap := c.Get("p1")
		if snap.Freshness != Valid || pendingCount(snap) != 0 {
			return false
		}
		count := 0
		for _, m := range snap.Messages {
			if m.Content == "hi there" {
				count++
			}
		}
		return count == 1
	}, time.Second, time.Millisecond)
}

func TestSubmit_SendMessage_FailureRemovesOptimisticEntry(t *testing.T) {
	b := newFakeBackend()
	b.sendErr = common.ErrorUnavailable
	c := NewCache(b)
	coord := NewCoordinator(b, c)

	waitForFreshness(t, c, "p1", Valid)
	baseline := b.listCount("p1")

	action, err := coord.Submit(context.Background(), "p1", ActionSendMessage, Payload{Content: "lost"})

	require.ErrorIs(t, err, common.ErrorUnavailable)
	assert.Equal(t, ActionFailed, action.Status)
	require.ErrorIs(t, action.Err, common.ErrorUnavailable)

	snap := c.Get("p1")
	assert.Zero(t, pendingCount(snap), "a failed send must leave no optimistic entry")
	assert.Empty(t, snap.Messages)
	assert.Equal(t, baseline, b.listCount("p1"), "a failed send must not invalidate")
}

func TestSubmit_UploadFile_NeverOptimistic(t *testing.T) {
	b := newFakeBackend()
	b.uploadGate = make(chan struct{})
	c := NewCache(b)
	coord := NewCoordinator(b, c)

	waitForFreshness(t, c, "p1", Valid)

	type result struct {
		action *PendingAction
		err    error
	}
	done := make(chan result, 1)
	go func() {
		action, err := coord.Submit(context.Background(), "p1", ActionUploadFile, Payload{FileName: "a.pdf", Data: []byte("x")})
		done <- result{action, err}
	}()

	// Nothing shows up while the upload is in flight.
	time.Sleep(10 * time.Millisecond)
	snap := c.Get("p1")
	assert.Empty(t, snap.Files)
	assert.Zero(t, pendingCount(snap))

	close(b.uploadGate)
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, ActionSucceeded, res.action.Status)

	require.Eventually(t, func() bool {
		snap := c.Get("p1")
		return snap.Freshness == Valid && len(snap.Files) == 1 && snap.Files[0].Name == "a.pdf"
	}, time.Second, time.Millisecond)
}

func TestSubmit_UploadFile_FailureLeavesNothing(t *testing.T) {
	b := newFakeBackend()
	b.uploadErr = common.ErrorUnavailable
	c := NewCache(b)
	coord := NewCoordinator(b, c)

	waitForFreshness(t, c, "p1", Valid)
	baseline := b.listCount("p1")

	action, err := coord.Submit(context.Background(), "p1", ActionUploadFile, Payload{FileName: "a.pdf", Data: []byte("x")})

	require.ErrorIs(t, err, common.ErrorUnavailable)
	assert.Equal(t, ActionFailed, action.Status)

	snap := c.Get("p1")
	assert.Empty(t, snap.Files)
	assert.Equal(t, baseline, b.listCount("p1"))
}

func TestSubmit_UnknownKind_Rejected(t *testing.T) {
	b := newFakeBackend()
	coord := NewCoordinator(b, NewCache(b))

	action, err := coord.Submit(context.Background(), "p1", ActionKind("delete-everything"), Payload{})

	require.Error(t, err)
	assert.Nil(t, action)
}
