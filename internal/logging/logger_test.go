package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })
	return &buf
}

func TestError_WritesJSONLine(t *testing.T) {
	buf := capture(t)
	fields := Fields{"battle_id": "b-1"}

	Error("record failed", errors.New("disk full"), fields)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "record failed", line["msg"])
	assert.Equal(t, "disk full", line["error"])
	assert.Equal(t, "b-1", line["battle_id"])
	assert.NotEmpty(t, line["ts"])
	assert.Len(t, fields, 1, "caller fields must not be modified")
}

func TestInfo_NilFields(t *testing.T) {
	buf := capture(t)
	Info("server started", nil)
	Warn("slow", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"info"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
}
