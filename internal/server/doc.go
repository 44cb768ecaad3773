// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the control API transport.
//
// The server lives for the lifetime of the context passed to Run and shuts
// down gracefully when it is cancelled, so it can run next to the
// background workers.
package server
