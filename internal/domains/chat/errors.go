package chat

import "errors"

var (
	// ErrNotConfigured means the AI provider credential is absent. The
	// server still boots without it; only this endpoint reports it.
	ErrNotConfigured = errors.New("ai provider is not configured")

	ErrUpstream        = errors.New("ai service request failed")
	ErrUpstreamTimeout = errors.New("ai service request timed out")
)
