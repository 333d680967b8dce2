package settingsdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store ChannelStore) {
	assert.ErrorIs(t, store.SetChannel(" @ "), ErrEmptyChannel)

	require.NoError(t, store.SetChannel("@NewChannel"))
	channel, err := store.Channel()
	require.NoError(t, err)
	assert.Equal(t, "NewChannel", channel)

	require.NoError(t, store.SetChannel("https://t.me/Other"))
	channel, err = store.Channel()
	require.NoError(t, err)
	assert.Equal(t, "Other", channel)
}

func TestMemory(t *testing.T) {
	store := NewMemory("")
	channel, err := store.Channel()
	require.NoError(t, err)
	assert.Empty(t, channel)

	testStore(t, store)

	channel, err = NewMemory("@Initial").Channel()
	require.NoError(t, err)
	assert.Equal(t, "Initial", channel)
}

func TestBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	store, err := Open(path, "@Initial")
	require.NoError(t, err)

	channel, err := store.Channel()
	require.NoError(t, err)
	assert.Equal(t, "Initial", channel)

	testStore(t, store)
	require.NoError(t, store.Close())

	// Значение из базы важнее начального
	store, err = Open(path, "Ignored")
	require.NoError(t, err)
	defer store.Close()

	channel, err = store.Channel()
	require.NoError(t, err)
	assert.Equal(t, "Other", channel)
}
