// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"

	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/models"
)

// fakeConn replays a fixed list of messages and then fails with err.
type fakeConn struct {
	messages [][]byte
	err      error
	closed   bool
}

func (f *fakeConn) Read(ctx context.Context) (websocket.MessageType, []byte, error) {
	if len(f.messages) == 0 {
		return 0, nil, f.err
	}
	m := f.messages[0]
	f.messages = f.messages[1:]
	return websocket.MessageText, m, nil
}

func (f *fakeConn) Close(code websocket.StatusCode, reason string) error {
	f.closed = true
	return nil
}

func (f *fakeConn) SetReadLimit(n int64) {}

func TestNewWebsocketEventStream_EmptyAddress(t *testing.T) {
	_, err := NewWebsocketEventStream(config.Adapter{}, func() string { return "" }, logger.Nop())
	assert.Error(t, err)
}

func TestEventStream_SkipsMalformedAndDelivers(t *testing.T) {
	conn := &fakeConn{
		messages: [][]byte{
			[]byte(`not json`),
			[]byte(`{"id":"n1","payload":[{"type":"conversation.otr-message-add","conversation":"c1","time":"2026-01-01T00:00:00Z","data":{"sender":"x"}}]}`),
			[]byte(`{"id":"n2","payload":[]}`),
		},
		err: errors.New("connection reset"),
	}
	var gotHeader http.Header
	s := &wsEventStream{
		url:   "ws://example",
		token: func() string { return "tok" },
		dial: func(ctx context.Context, url string, header http.Header) (wsConn, error) {
			gotHeader = header
			return conn, nil
		},
		logger: logger.Nop(),
	}

	var delivered [][]models.SyncEvent
	err := s.Run(context.Background(), func(ctx context.Context, events []models.SyncEvent) error {
		delivered = append(delivered, events)
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, conn.closed)
	assert.Equal(t, "Bearer tok", gotHeader.Get("Authorization"))
	require.Len(t, delivered, 1)
	assert.Equal(t, "n1", delivered[0][0].ID)
}

func TestEventStream_HandlerErrorStops(t *testing.T) {
	conn := &fakeConn{messages: [][]byte{
		[]byte(`{"payload":[{"type":"x"}]}`),
		[]byte(`{"payload":[{"type":"y"}]}`),
	}}
	s := &wsEventStream{
		url:   "ws://example",
		token: func() string { return "" },
		dial: func(ctx context.Context, url string, header http.Header) (wsConn, error) {
			return conn, nil
		},
		logger: logger.Nop(),
	}

	calls := 0
	err := s.Run(context.Background(), func(ctx context.Context, events []models.SyncEvent) error {
		calls++
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}

func TestEventStream_DialError(t *testing.T) {
	s := &wsEventStream{
		url:   "ws://example",
		token: func() string { return "" },
		dial: func(ctx context.Context, url string, header http.Header) (wsConn, error) {
			return nil, assert.AnError
		},
		logger: logger.Nop(),
	}

	err := s.Run(context.Background(), func(ctx context.Context, events []models.SyncEvent) error { return nil })
	assert.ErrorIs(t, err, assert.AnError)
}

func TestEventStream_RealWebsocket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		ctx := r.Context()
		_ = c.Write(ctx, websocket.MessageText, []byte(`{"id":"n7","payload":[{"type":"user.connection","connection":{"from":"me","to":"you","status":"accepted","last_update":"2026-01-01T00:00:00Z"}}]}`))
		c.Close(websocket.StatusNormalClosure, "done")
	}))
	defer srv.Close()

	stream, err := NewWebsocketEventStream(
		config.Adapter{EventsAddress: "ws" + strings.TrimPrefix(srv.URL, "http")},
		func() string { return "tok" },
		logger.Nop(),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got []models.SyncEvent
	err = stream.Run(ctx, func(ctx context.Context, events []models.SyncEvent) error {
		got = append(got, events...)
		return nil
	})

	assert.ErrorIs(t, err, ErrStreamClosed)
	require.Len(t, got, 1)
	assert.Equal(t, models.EventUserConnection, got[0].Type)
	assert.Equal(t, "n7", got[0].ID)
}
