// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoControlAPI = errors.New("control API address is not configured")
	errListen       = errors.New("control API listen failed")
)
