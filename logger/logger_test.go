package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelText(t *testing.T) {
	for l := LevelError; l <= LevelTrace; l++ {
		text, err := l.MarshalText()
		require.NoError(t, err)
		var out Level
		require.NoError(t, out.UnmarshalText(text))
		require.Equal(t, l, out)
	}

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("DEBUG")))
	require.Equal(t, LevelDebug, l)
	require.Error(t, l.UnmarshalText([]byte("verbose")))

	_, err := Level(10).MarshalText()
	require.Error(t, err)
	require.Equal(t, "Level(10)", Level(10).String())
}

func TestLogrus(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogrus(&buf, LevelInfo)
	l.Debug("hidden")
	l.With("file", "key.pem").Info("decoded")
	l.WithFields(map[string]any{"kind": "PrivateKeyInfo"}).Logf(LevelWarn, "value %d", 1)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "file=key.pem")
	require.Contains(t, out, "msg=decoded")
	require.Contains(t, out, "kind=PrivateKeyInfo")
	require.Contains(t, out, "value 1")
}
