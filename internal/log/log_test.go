package log

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLevel(LevelInfo)
	defer SetLevel(LevelInfo)

	Debug("hidden", "k", 1)
	assert.Empty(t, buf.String())

	Info("search completed", "query", "python", "matches", 2)
	assert.Contains(t, buf.String(), "[INFO] search completed query=python matches=2")

	buf.Reset()
	SetLevel(LevelError)
	Info("dropped")
	Error("config save failed", errors.New("disk full"), "path", "/tmp/x")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "[ERROR] config save failed err=disk full path=/tmp/x")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelError, ParseLevel(" ERROR "))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
}

func TestOddKeyValueIgnored(t *testing.T) {
	assert.Equal(t, " a=1", formatKVs("a", 1, "dangling"))
	assert.Equal(t, "", formatKVs(42, "x"))
}
