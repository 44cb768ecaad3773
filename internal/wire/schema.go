// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wire

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const (
	schemaNotification     = "notification.json"
	schemaServiceMessage   = "service_message.json"
	schemaOTRMessage       = "otr_message.json"
	schemaConnection       = "connection.json"
	schemaConversation     = "conversation.json"
	schemaConversationPage = "conversation_page.json"

	schemaBaseURL = "https://convsync.local/schemas/"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var schemas = mustCompileSchemas()

func mustCompileSchemas() map[string]*jsonschema.Schema {
	names := []string{
		schemaNotification,
		schemaServiceMessage,
		schemaOTRMessage,
		schemaConnection,
		schemaConversation,
		schemaConversationPage,
	}

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	for _, name := range names {
		raw, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			panic(fmt.Sprintf("wire: read schema %s: %v", name, err))
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			panic(fmt.Sprintf("wire: parse schema %s: %v", name, err))
		}
		if err := c.AddResource(schemaBaseURL+name, doc); err != nil {
			panic(fmt.Sprintf("wire: add schema %s: %v", name, err))
		}
	}

	compiled := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		compiled[name] = c.MustCompile(schemaBaseURL + name)
	}
	return compiled
}

// validate checks data against the named schema.
func validate(name string, data []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if err := schemas[name].Validate(inst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedPayload, name, err)
	}
	return nil
}
