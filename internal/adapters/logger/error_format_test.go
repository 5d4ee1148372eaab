package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jsl/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "standard error",
			err:  errors.New("plain"),
			want: []string{"plain"},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(zerr.New("root"), "middle"), "top"),
			want: []string{"top", "middle", "root"},
		},
		{
			name: "zerr wrapping standard error",
			err:  zerr.Wrap(fmt.Errorf("read: %w", errors.New("eof")), "failed"),
			want: []string{"failed", "read: eof"},
		},
		{
			name: "metadata on standard error skips empty message",
			err:  zerr.With(errors.New("plain"), "k", "v"),
			want: []string{"plain"},
		},
		{
			name: "joined errors are flattened",
			err:  errors.Join(zerr.New("first"), zerr.Wrap(zerr.New("inner"), "second")),
			want: []string{"first", "second", "inner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	assert.Equal(t, "Error: only", logger.FormatErrorEntries([]string{"only"}))

	got := logger.FormatErrorEntries([]string{"top\ndetail", "cause\nmore"})
	assert.Equal(t,
		"Error: top\n       detail\n\n  Caused by:\n    → cause\n      more",
		got)
}
