// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the convsync process runtime.
//
// It wires the local store, the remote adapters, the synchronization
// services, the notification dispatcher and the control API into a single
// process lifecycle driven by one context.
package client
