// Package common defines shared constants and sentinel errors used across
// SocialHub layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Input errors.
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrUnknownMetric   = errors.New("unknown metric")
)
