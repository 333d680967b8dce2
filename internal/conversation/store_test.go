package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestStoreExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	store := NewStore(time.Minute, clock.now)

	session, _ := Start(clock.now())
	store.Put(1, session)

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, AwaitingText, got.State)

	clock.t = clock.t.Add(2 * time.Minute)
	_, ok = store.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStoreStartOverwrites(t *testing.T) {
	store := NewStore(0, nil)

	session, _ := Start(store.Now())
	session, _ = Transition(session, Input{Text: "old text"}, store.Now())
	store.Put(7, session)

	session, _ = Start(store.Now())
	store.Put(7, session)

	got, ok := store.Get(7)
	require.True(t, ok)
	assert.Equal(t, AwaitingText, got.State)
	assert.Empty(t, got.Draft.Text)
	assert.Equal(t, 1, store.Len())
}

func TestStoreIdleDeletes(t *testing.T) {
	store := NewStore(0, nil)
	session, _ := Start(store.Now())
	store.Put(1, session)

	store.Put(1, Session{State: Idle})
	_, ok := store.Get(1)
	assert.False(t, ok)

	assert.False(t, store.Delete(1))
	store.Put(1, session)
	assert.True(t, store.Delete(1))
}

func TestStoreSweep(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	store := NewStore(time.Minute, clock.now)

	session, _ := Start(clock.now())
	store.Put(1, session)
	store.Put(2, session)

	clock.t = clock.t.Add(30 * time.Second)
	fresh, _ := Start(clock.now())
	store.Put(3, fresh)

	clock.t = clock.t.Add(45 * time.Second)
	assert.Equal(t, 2, store.Sweep())
	assert.Equal(t, 1, store.Len())
	_, ok := store.Get(3)
	assert.True(t, ok)
}

func TestSweeper(t *testing.T) {
	store := NewStore(time.Nanosecond, nil)
	session, _ := Start(time.Now().Add(-time.Hour))
	store.Put(1, session)

	removed := make(chan int, 10)
	sweeper := StartSweeper(store, time.Second, func(n int) { removed <- n })
	defer sweeper.Stop()

	select {
	case n := <-removed:
		assert.Equal(t, 1, n)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper didn't run")
	}
	assert.Equal(t, 0, store.Len())
}
