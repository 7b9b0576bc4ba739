package audit

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRe = regexp.MustCompile(`^\[\d{2}:\d{2} (AM|PM)\] `)

func TestFileSink_Append(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	require.NoError(t, err)

	require.NoError(t, sink.Append("svc1", "AppService started in WestEurope"))
	require.NoError(t, sink.Append("svc1", "AppService stopped successfully"))

	data, err := os.ReadFile(sink.LogPath("svc1"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	assert.Regexp(t, lineRe, lines[0])
	assert.Contains(t, lines[0], "AppService started in WestEurope")
	assert.Contains(t, lines[1], "stopped successfully")
}

func TestFileSink_PerResourceFiles(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	require.NoError(t, err)

	require.NoError(t, sink.Append("a", "first"))
	require.NoError(t, sink.Append("b", "second"))

	dataA, err := os.ReadFile(sink.LogPath("a"))
	require.NoError(t, err)
	assert.NotContains(t, string(dataA), "second")
}

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()
	require.NoError(t, sink.Append("x", "one"))
	require.NoError(t, sink.Append("x", "two"))

	assert.Equal(t, []string{"one", "two"}, sink.Messages("x"))
	assert.Empty(t, sink.Messages("y"))
}
