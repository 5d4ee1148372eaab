package domain_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsl/internal/core/domain"
)

func TestParseVersionPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.VersionPolicy
	}{
		{"exact", domain.PolicyExact},
		{"Latest", domain.PolicyLatest},
		{"latestMajor", domain.PolicyLatestMajor},
		{"latest-major", domain.PolicyLatestMajor},
		{"LATESTMINOR", domain.PolicyLatestMinor},
		{"latest_minor", domain.PolicyLatestMinor},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseVersionPolicy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := domain.ParseVersionPolicy("newest")
	require.ErrorContains(t, err, "unknown version policy")
}

func TestVersionPolicy_String(t *testing.T) {
	for _, p := range []domain.VersionPolicy{
		domain.PolicyExact, domain.PolicyLatest, domain.PolicyLatestMajor, domain.PolicyLatestMinor,
	} {
		parsed, err := domain.ParseVersionPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestParseScriptLocation(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.ScriptLocation
		provider string
	}{
		{"", domain.LocationBodyBottom, "DnnFormBottomProvider"},
		{"head", domain.LocationHead, "DnnPageHeaderProvider"},
		{"BodyTop", domain.LocationBodyTop, "DnnBodyProvider"},
		{"bodybottom", domain.LocationBodyBottom, "DnnFormBottomProvider"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseScriptLocation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.provider, got.Provider())
		})
	}

	_, err := domain.ParseScriptLocation("footer")
	require.ErrorContains(t, err, "unknown script location")
}

func TestLibrary_Key(t *testing.T) {
	lib := domain.Library{Name: domain.NewInternedString("jQuery"), Version: semver.MustParse("1.9.1")}
	assert.Equal(t, "jQuery@1.9.1", lib.Key())

	lib.Version = nil
	assert.Equal(t, "jQuery", lib.Key())
}
