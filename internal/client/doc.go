// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wraps the terminal UI into a single process lifecycle behind the
// Client interface.
package client
