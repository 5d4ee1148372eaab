package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jsl/internal/core/domain"
)

func TestPhases(t *testing.T) {
	assert.Equal(t,
		[]domain.CyclePhase{domain.PhaseLegacy, domain.PhaseResolve, domain.PhaseEmit},
		domain.Phases(),
	)
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(999), "INFO"}, // Default case
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}
