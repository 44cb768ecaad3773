// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pukapp/convsync/models"
)

func TestDecodeServiceMessage(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    models.ServiceMessagePayload
		wantErr bool
	}{
		{
			name: "member join",
			data: `{"action":"member-join","user_ids":["a","b"]}`,
			want: models.ServiceMessagePayload{Action: models.ActionMemberJoin, UserIDs: []string{"a", "b"}},
		},
		{
			name: "rename",
			data: `{"action":"rename","name":"ops"}`,
			want: models.ServiceMessagePayload{Action: models.ActionRename, Name: "ops"},
		},
		{
			name: "archive",
			data: `{"action":"archive","archived":true}`,
			want: models.ServiceMessagePayload{Action: models.ActionArchive, Archived: true},
		},
		{name: "unknown action", data: `{"action":"explode"}`, wantErr: true},
		{name: "join without users", data: `{"action":"member-join"}`, wantErr: true},
		{name: "leave with empty users", data: `{"action":"member-leave","user_ids":[]}`, wantErr: true},
		{name: "rename without name", data: `{"action":"rename"}`, wantErr: true},
		{name: "archive without flag", data: `{"action":"archive"}`, wantErr: true},
		{name: "empty", data: ``, wantErr: true},
		{name: "wrong type", data: `{"action":"member-join","user_ids":"a"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeServiceMessage([]byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeOTRMessage(t *testing.T) {
	got, err := DecodeOTRMessage([]byte(`{"sender":"c1","recipient":"c2","text":"ignored"}`))
	require.NoError(t, err)
	assert.Equal(t, models.OTRMessagePayload{Sender: "c1", Recipient: "c2"}, got)

	_, err = DecodeOTRMessage([]byte(`{"recipient":"c2"}`))
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDecodeConnection(t *testing.T) {
	data := []byte(`{"type":"user.connection","connection":{"from":"me","to":"you","conversation":"c9","status":"pending","last_update":"2026-02-02T02:02:02+02:00"},"user":{"name":"You"}}`)

	got, err := DecodeConnection(data)
	require.NoError(t, err)
	assert.Equal(t, "me", got.From)
	assert.Equal(t, "you", got.To)
	assert.Equal(t, "c9", got.ConversationID)
	assert.Equal(t, models.ConnectionPending, got.Status)
	assert.Equal(t, "You", got.UserName)
	assert.Equal(t, time.UTC, got.LastUpdate.Location())
	assert.True(t, got.LastUpdate.Equal(time.Date(2026, 2, 2, 0, 2, 2, 0, time.UTC)))

	_, err = DecodeConnection([]byte(`{"connection":{"from":"me","status":"accepted","last_update":"2026-02-02T02:02:02Z"}}`))
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDecodeConversationPage(t *testing.T) {
	data := []byte(`{
		"conversations": [
			{"id":"A","type":0,"name":"team","creator":"u1","members":["u1","u2"],"archived":false,"last_event_time":"2026-01-01T00:00:00Z"},
			{"id":"B","type":2,"name":null,"members":["u1"],"last_event_time":"2026-01-02T00:00:00Z"}
		],
		"next_cursor": "B"
	}`)

	page, err := DecodeConversationPage(data)
	require.NoError(t, err)
	require.Len(t, page.Conversations, 2)
	assert.Equal(t, "A", page.Conversations[0].ID)
	assert.Equal(t, models.ConversationOneOnOne, models.ConversationTypeFromCode(page.Conversations[1].Type))
	assert.Empty(t, page.Conversations[1].Name)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "B", *page.NextCursor)
}

func TestDecodeConversationPage_LastPage(t *testing.T) {
	for _, body := range []string{
		`{"conversations":[]}`,
		`{"conversations":[],"next_cursor":null}`,
		`{"conversations":[],"next_cursor":""}`,
	} {
		page, err := DecodeConversationPage([]byte(body))
		require.NoError(t, err, body)
		assert.Nil(t, page.NextCursor, body)
	}
}

func TestDecodeConversationPage_Invalid(t *testing.T) {
	tests := []string{
		`{}`,
		`{"conversations":[{"id":"","type":0,"members":[],"last_event_time":"2026-01-01T00:00:00Z"}]}`,
		`{"conversations":[{"id":"A","type":9,"members":[],"last_event_time":"2026-01-01T00:00:00Z"}]}`,
		`{"conversations":[{"id":"A","type":0,"members":[],"last_event_time":"soon"}]}`,
		`{"conversations":[{"id":"A","type":0,"last_event_time":"2026-01-01T00:00:00Z"}]}`,
	}
	for _, body := range tests {
		_, err := DecodeConversationPage([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedPayload, body)
	}
}

func TestDecodeConversation(t *testing.T) {
	s, err := DecodeConversation([]byte(`{"id":"X","type":3,"members":["a","b"],"last_event_time":"2026-01-01T00:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, "X", s.ID)
	assert.Equal(t, []string{"a", "b"}, s.Members)
}

func TestDecodeMutationResult(t *testing.T) {
	res, err := DecodeMutationResult(nil)
	require.NoError(t, err)
	assert.True(t, res.Time.IsZero())

	res, err = DecodeMutationResult([]byte(`{"time":"2026-05-05T05:05:05Z","type":"conversation.rename"}`))
	require.NoError(t, err)
	assert.True(t, res.Time.Equal(time.Date(2026, 5, 5, 5, 5, 5, 0, time.UTC)))

	_, err = DecodeMutationResult([]byte(`{"time":"later"}`))
	assert.ErrorIs(t, err, ErrMalformedPayload)
}
