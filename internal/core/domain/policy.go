package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// VersionPolicy selects which installed version of a library satisfies a request.
type VersionPolicy int

const (
	// PolicyExact matches the requested version exactly.
	PolicyExact VersionPolicy = iota
	// PolicyLatest picks the highest installed version.
	PolicyLatest
	// PolicyLatestMajor picks the first installed version whose major component is at
	// least the requested one.
	PolicyLatestMajor
	// PolicyLatestMinor picks the first installed version whose minor component is at
	// least the requested one. The major component is not compared.
	PolicyLatestMinor
)

// String returns the configuration spelling of the policy.
func (p VersionPolicy) String() string {
	switch p {
	case PolicyLatest:
		return "latest"
	case PolicyLatestMajor:
		return "latestMajor"
	case PolicyLatestMinor:
		return "latestMinor"
	default:
		return "exact"
	}
}

// ParseVersionPolicy parses a policy name case-insensitively.
func ParseVersionPolicy(s string) (VersionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return PolicyExact, nil
	case "latest":
		return PolicyLatest, nil
	case "latestmajor", "latest-major", "latest_major":
		return PolicyLatestMajor, nil
	case "latestminor", "latest-minor", "latest_minor":
		return PolicyLatestMinor, nil
	default:
		return PolicyExact, zerr.With(ErrUnknownPolicy, "policy", s)
	}
}
