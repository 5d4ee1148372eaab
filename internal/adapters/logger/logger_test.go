package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsl/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newLogger(t)

	l.Info("resolved 3 libraries")
	l.Warn("missing library")
	l.Error(os.ErrPermission)

	assert.Equal(t,
		"resolved 3 libraries\n! missing library\n✗ Error: permission denied\n",
		buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	l, buf := newLogger(t)

	base := zerr.New("library not found")
	err := zerr.With(zerr.Wrap(base, "failed to resolve page"), "path", "home.yaml")

	l.Error(err)

	assert.Equal(t,
		"✗ Error: failed to resolve page\n\n  Caused by:\n    → library not found\n",
		buf.String())
}

func TestLogger_ErrorContext(t *testing.T) {
	l, buf := newLogger(t)

	base := zerr.New("library not installed")
	err := zerr.With(zerr.Wrap(base, "cannot register library"), "library", "Moment")
	err = zerr.With(err, "cycle_id", "1b4e28ba-2fa1-11d2-883f")
	err = zerr.With(err, "page", "home.yaml")

	l.Error(err)

	assert.Equal(t,
		"✗ [1b4e28ba] Error: cannot register library page=home.yaml library=Moment\n\n  Caused by:\n    → library not installed\n",
		buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newLogger(t)
	l.SetJSON(true)

	l.Warn("collision")
	l.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "collision", rec["msg"])

	require.NoError(t, json.Unmarshal(lines[1], &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "boom", rec["error"])
}

func TestLogger_SetOutputKeepsMode(t *testing.T) {
	l, _ := newLogger(t)
	l.SetJSON(true)

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	l.Info("hello")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
