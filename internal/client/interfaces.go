// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable client application. Run blocks until the session
// ends.
type Client interface {
	Run() error
}
