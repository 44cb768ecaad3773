// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wire decodes the payloads of the remote conversation service.
//
// Every payload is checked against an embedded JSON schema before it is
// turned into a model, so a decoded value always has the fields the
// transcoder relies on. Notifications are split into [models.SyncEvent]
// values without decoding their type specific bodies; the bodies are
// decoded on demand by [DecodeServiceMessage], [DecodeOTRMessage] and
// [DecodeConnection]. Unknown event types pass through untouched.
package wire
