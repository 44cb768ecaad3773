// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pukapp/convsync/internal/adapter"
	"github.com/pukapp/convsync/internal/wire"
)

// classifyAdapterError translates an adapter error into the service error
// the driver acts on.
func classifyAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, adapter.ErrDecodingResponse), errors.Is(err, wire.ErrMalformedPayload):
		return fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	return fmt.Errorf("%w: %w", ErrTransport, err)
}
