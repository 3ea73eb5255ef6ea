package observe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifier_DeliversToSubscriber(t *testing.T) {
	n := NewNotifier[int]()

	ch, cancel := n.Subscribe()
	defer cancel()

	n.Notify(42)
	require.Equal(t, 42, <-ch)
}

func TestNotifier_LatestValueWins(t *testing.T) {
	n := NewNotifier[string]()

	ch, cancel := n.Subscribe()
	defer cancel()

	n.Notify("old")
	n.Notify("new")

	require.Equal(t, "new", <-ch)
}

func TestNotifier_MultipleSubscribers(t *testing.T) {
	n := NewNotifier[int]()

	ch1, cancel1 := n.Subscribe()
	defer cancel1()
	ch2, cancel2 := n.Subscribe()
	defer cancel2()

	n.Notify(7)

	require.Equal(t, 7, <-ch1)
	require.Equal(t, 7, <-ch2)
}

func TestNotifier_UnsubscribeClosesChannel(t *testing.T) {
	n := NewNotifier[int]()

	ch, cancel := n.Subscribe()
	cancel()

	_, ok := <-ch
	require.False(t, ok)

	// Second cancel must be a no-op.
	require.NotPanics(t, cancel)

	// Notify after unsubscribe must not panic either.
	require.NotPanics(t, func() { n.Notify(1) })
}
