// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the basic-auth middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingCredentials is returned when the incoming request does not
	// carry basic-auth credentials at all.
	ErrMissingCredentials = errors.New("missing basic auth credentials")

	// ErrInvalidCredentials is returned when credentials are present but the
	// user name or password does not match the configured values.
	ErrInvalidCredentials = errors.New("invalid basic auth credentials")
)
