// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wire

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/pukapp/convsync/models"
)

// DecodeServiceMessage decodes the body of a
// conversation.service-message-add event.
func DecodeServiceMessage(data []byte) (models.ServiceMessagePayload, error) {
	var p models.ServiceMessagePayload
	if err := decode(schemaServiceMessage, data, &p); err != nil {
		return models.ServiceMessagePayload{}, err
	}
	return p, nil
}

// DecodeOTRMessage decodes the routing part of a
// conversation.otr-message-add event body.
func DecodeOTRMessage(data []byte) (models.OTRMessagePayload, error) {
	var p models.OTRMessagePayload
	if err := decode(schemaOTRMessage, data, &p); err != nil {
		return models.OTRMessagePayload{}, err
	}
	return p, nil
}

// DecodeConnection decodes a user.connection event.
func DecodeConnection(data []byte) (models.ConnectionPayload, error) {
	if err := validate(schemaConnection, data); err != nil {
		return models.ConnectionPayload{}, err
	}

	var p models.ConnectionPayload
	if err := json.Unmarshal([]byte(gjson.GetBytes(data, "connection").Raw), &p); err != nil {
		return models.ConnectionPayload{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	p.LastUpdate = p.LastUpdate.UTC()
	p.UserName = gjson.GetBytes(data, "user.name").Str

	return p, nil
}

// DecodeConversation decodes a single conversation summary.
func DecodeConversation(data []byte) (models.ConversationSummary, error) {
	var s models.ConversationSummary
	if err := decode(schemaConversation, data, &s); err != nil {
		return models.ConversationSummary{}, err
	}
	s.LastModified = s.LastModified.UTC()
	return s, nil
}

// DecodeConversationPage decodes one page of the conversation listing.
func DecodeConversationPage(data []byte) (models.ConversationPage, error) {
	var page models.ConversationPage
	if err := decode(schemaConversationPage, data, &page); err != nil {
		return models.ConversationPage{}, err
	}
	for i := range page.Conversations {
		page.Conversations[i].LastModified = page.Conversations[i].LastModified.UTC()
	}
	if page.NextCursor != nil && *page.NextCursor == "" {
		page.NextCursor = nil
	}
	return page, nil
}

// DecodeMutationResult reads the server timestamp of a mutation response.
// An empty body or a body without "time" yields a zero Time.
func DecodeMutationResult(data []byte) (models.RequestResult, error) {
	var res models.RequestResult
	if len(data) == 0 {
		return res, nil
	}
	if ts := gjson.GetBytes(data, "time"); ts.Exists() {
		t, err := parseTime(ts.Str)
		if err != nil {
			return res, err
		}
		res.Time = t
	}
	return res, nil
}

func decode(schema string, data []byte, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformedPayload)
	}
	if err := validate(schema, data); err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return nil
}
