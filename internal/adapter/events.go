// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"nhooyr.io/websocket"

	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/wire"
	"github.com/pukapp/convsync/models"
)

// maxNotificationSize bounds a single websocket message.
const maxNotificationSize = 4 << 20

// wsConn is the part of *websocket.Conn the stream uses.
type wsConn interface {
	Read(ctx context.Context) (websocket.MessageType, []byte, error)
	Close(code websocket.StatusCode, reason string) error
	SetReadLimit(n int64)
}

type dialFunc func(ctx context.Context, url string, header http.Header) (wsConn, error)

type wsEventStream struct {
	url   string
	token func() string
	dial  dialFunc

	logger *logger.Logger
}

// NewWebsocketEventStream returns an [EventStream] reading notifications
// from adapterCfg.EventsAddress. token is called on every connect so a
// refreshed bearer token is picked up.
func NewWebsocketEventStream(adapterCfg config.Adapter, token func() string, logger *logger.Logger) (EventStream, error) {
	u := strings.TrimSpace(adapterCfg.EventsAddress)
	if u == "" {
		return nil, fmt.Errorf("empty events address")
	}
	if !strings.Contains(u, "://") {
		u = "ws://" + u
	}

	return &wsEventStream{
		url:    u,
		token:  token,
		dial:   dialWebsocket,
		logger: logger,
	}, nil
}

func dialWebsocket(ctx context.Context, url string, header http.Header) (wsConn, error) {
	conn, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{HTTPHeader: header}) //nolint:bodyclose // closed by websocket.Dial
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Run implements [EventStream]. Malformed notifications are logged and
// skipped.
func (s *wsEventStream) Run(ctx context.Context, handle func(ctx context.Context, events []models.SyncEvent) error) error {
	header := http.Header{}
	if token := s.token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, err := s.dial(ctx, s.url, header)
	if err != nil {
		return fmt.Errorf("dialing websocket: %w", err)
	}
	conn.SetReadLimit(maxNotificationSize)
	s.logger.Info().Str("url", s.url).Msg("event stream connected")

	return s.readLoop(ctx, conn, handle)
}

func (s *wsEventStream) readLoop(ctx context.Context, conn wsConn, handle func(ctx context.Context, events []models.SyncEvent) error) error {
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.CloseStatus(err) != -1 {
				return fmt.Errorf("%w: %w", ErrStreamClosed, err)
			}
			return fmt.Errorf("reading websocket: %w", err)
		}
		if typ != websocket.MessageText && typ != websocket.MessageBinary {
			continue
		}

		events, err := wire.DecodeNotification(data)
		if err != nil {
			s.logger.Err(err).Str("func", "*wsEventStream.readLoop").Msg("skipping malformed notification")
			continue
		}
		if len(events) == 0 {
			continue
		}

		if err := handle(ctx, events); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			return fmt.Errorf("handling notification: %w", err)
		}
	}
}
