package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestLogRequest(t *testing.T) {
	var buf bytes.Buffer
	Initialize(false, &buf)

	LogRequest(RequestData{Username: "admin", ID: 10, Command: "/post"})

	entry := lastEntry(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/post", entry["command"])
	assert.Equal(t, "admin", entry["user"])
	assert.Equal(t, float64(10), entry["id"])
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	Initialize(false, &buf)

	LogError(ErrorData{Error: errors.New("boom"), UserID: 5, Command: "/createpost", AddInfo: "send"})

	entry := lastEntry(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "send", entry["info"])

	LogMinorError("send", "attempt to send", errors.New("timeout"))
	entry = lastEntry(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "send", entry["func"])
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	Initialize(false, &buf)
	LogDebug("hidden")
	assert.Empty(t, buf.String())

	Initialize(true, &buf)
	LogDebug("visible")
	assert.Contains(t, buf.String(), "visible")
}
