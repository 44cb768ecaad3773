// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local control API of convsync.
//
// It exposes the synchronization status, the locally stored conversations
// and the local edit operations over REST. Request tracing, access logging,
// compression, token authentication and body signature checks are handled
// by middleware in this package before requests reach the service layer.
package http
