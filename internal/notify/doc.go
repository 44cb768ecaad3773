// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers applied conversation changes to local listeners.
//
// [Dispatcher] implements the transcoder's notification relay. Notify only
// enqueues; [Dispatcher.Run] drains the queue on its own goroutine, keeps a
// bounded history of recent changes and fans each change out to the
// subscribed handlers.
package notify
