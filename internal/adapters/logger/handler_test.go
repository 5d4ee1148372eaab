package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jsl/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		msg   string
		want  string
	}{
		{"info level", slog.LevelInfo, "information", "information\n"},
		{"warn level", slog.LevelWarn, "careful", "! careful\n"},
		{"error level", slog.LevelError, "broken", "✗ broken\n"},
		{"debug level filtered", slog.LevelDebug, "hidden", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).
		With("cycle", "c1").
		WithGroup("lib")
	lg.Info("selected", "name", "jQuery")

	assert.Equal(t, "selected lib.cycle=c1 lib.name=jQuery\n", buf.String())
}

func TestPrettyHandler_CycleTag(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Warn("collision", "cycle_id", "1b4e28ba-2fa1-11d2-883f", "library", "jQuery")
	lg.Info("short", "cycle_id", "c1")

	assert.Equal(t, "! [1b4e28ba] collision library=jQuery\n[c1] short\n", buf.String())
}

func TestPrettyHandler_AttrsFollowFirstLine(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Error("Error: failed\n\n  Caused by:\n    → boom", "page", "home.yaml")

	assert.Equal(t, "✗ Error: failed page=home.yaml\n\n  Caused by:\n    → boom\n", buf.String())
}
