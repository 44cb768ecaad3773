// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wire

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/pukapp/convsync/models"
)

// DecodeNotification splits a notification into its events, in payload
// order. When the notification carries an id, each event gets that id, or
// the id suffixed with the payload index when there is more than one event.
func DecodeNotification(raw []byte) ([]models.SyncEvent, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: notification is not valid JSON", ErrMalformedPayload)
	}
	if err := validate(schemaNotification, raw); err != nil {
		return nil, err
	}

	notificationID := gjson.GetBytes(raw, "id").Str
	payload := gjson.GetBytes(raw, "payload").Array()

	events := make([]models.SyncEvent, 0, len(payload))
	for i, el := range payload {
		event, err := decodeEvent(el)
		if err != nil {
			return nil, fmt.Errorf("payload[%d]: %w", i, err)
		}
		switch {
		case notificationID == "":
		case len(payload) == 1:
			event.ID = notificationID
		default:
			event.ID = notificationID + "#" + strconv.Itoa(i)
		}
		events = append(events, event)
	}

	return events, nil
}

// DecodeEvent decodes a single event object.
func DecodeEvent(raw []byte) (models.SyncEvent, error) {
	if !gjson.ValidBytes(raw) {
		return models.SyncEvent{}, fmt.Errorf("%w: event is not valid JSON", ErrMalformedPayload)
	}
	event, err := decodeEvent(gjson.ParseBytes(raw))
	if err != nil {
		return models.SyncEvent{}, err
	}
	event.ID = gjson.GetBytes(raw, "id").Str
	return event, nil
}

func decodeEvent(el gjson.Result) (models.SyncEvent, error) {
	eventType := el.Get("type").Str
	if eventType == "" {
		return models.SyncEvent{}, fmt.Errorf("%w: event without type", ErrMalformedPayload)
	}

	event := models.SyncEvent{
		Type:           models.EventType(eventType),
		ConversationID: el.Get("conversation").Str,
		From:           el.Get("from").Str,
		Raw:            []byte(el.Raw),
	}

	if data := el.Get("data"); data.Exists() {
		event.Data = []byte(data.Raw)
	}

	switch event.Type {
	case models.EventOTRMessageAdd:
		event.SenderClientID = el.Get("data.sender").Str
	case models.EventUserConnection:
		// the connection body sits next to the tag
		event.Data = []byte(el.Raw)
		if event.ConversationID == "" {
			event.ConversationID = el.Get("connection.conversation").Str
		}
	}

	ts := el.Get("time")
	if !ts.Exists() && event.Type == models.EventUserConnection {
		ts = el.Get("connection.last_update")
	}
	if ts.Exists() {
		t, err := parseTime(ts.Str)
		if err != nil {
			return models.SyncEvent{}, err
		}
		event.Time = t
	}

	return event, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q: %w", ErrMalformedPayload, s, err)
	}
	return t.UTC(), nil
}
