package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("BOT_ADMINS", "")
	t.Setenv("BOT_CHANNEL", "")
}

func TestParse(t *testing.T) {
	clearEnv(t)

	data, err := Parse([]string{"-bToken", "123:abc", "-admins", "1, 2,,3", "-rate", "100", "-sessionTTL", "5m", "-channel", "@news"})
	require.NoError(t, err)

	assert.Equal(t, "123:abc", data.BotToken)
	assert.Equal(t, []int64{1, 2, 3}, data.Admins)
	assert.Equal(t, 100*time.Millisecond, data.Rate)
	assert.Equal(t, 5*time.Minute, data.SessionTTL)
	assert.Equal(t, "@news", data.Channel)
	assert.Empty(t, data.DBPath)
	assert.False(t, data.Debug)
}

func TestParseFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "env-token")
	t.Setenv("BOT_ADMINS", "42")

	data, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "env-token", data.BotToken)
	assert.Equal(t, []int64{42}, data.Admins)
	assert.Equal(t, 30*time.Minute, data.SessionTTL)
}

func TestParseErrors(t *testing.T) {
	clearEnv(t)

	_, err := Parse([]string{"-admins", "1"})
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = Parse([]string{"-bToken", "t"})
	assert.ErrorIs(t, err, ErrNoAdmins)

	_, err = Parse([]string{"-bToken", "t", "-admins", "1,abc"})
	assert.Error(t, err)
}

func TestAdminsFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "ids.json")
	require.NoError(t, os.WriteFile(path, []byte("[6728678197, 7]"), 0600))

	data, err := Parse([]string{"-bToken", "t", "-admins", "1", "-adminsFile", path})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 6728678197, 7}, data.Admins)

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))
	_, err = Parse([]string{"-bToken", "t", "-adminsFile", path})
	assert.Error(t, err)
}
