// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the configuration. It is shared by
// the JSON and YAML formats.
type fileConfig struct {
	App struct {
		SelfUserID   string `json:"self_user_id" yaml:"self_user_id"`
		SelfClientID string `json:"self_client_id" yaml:"self_client_id"`
		AccessToken  string `json:"access_token" yaml:"access_token"`
		HashKey      string `json:"hash_key" yaml:"hash_key"`
		TokenIssuer  string `json:"token_issuer" yaml:"token_issuer"`
		LogLevel     string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver" yaml:"driver"`
			DSN    string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		EventsAddress  string   `json:"events_address" yaml:"events_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Sync struct {
		ConversationPageSize         int `json:"conversation_page_size" yaml:"conversation_page_size"`
		PendingEventsPerConversation int `json:"pending_events_per_conversation" yaml:"pending_events_per_conversation"`
		PendingConversations         int `json:"pending_conversations" yaml:"pending_conversations"`
		IngressBufferSize            int `json:"ingress_buffer_size" yaml:"ingress_buffer_size"`
	} `json:"sync" yaml:"sync"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval" yaml:"sync_interval"`
	} `json:"workers" yaml:"workers"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`
}

// parseFile reads a JSON or YAML config file, chosen by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SelfUserID:   fc.App.SelfUserID,
			SelfClientID: fc.App.SelfClientID,
			AccessToken:  fc.App.AccessToken,
			HashKey:      fc.App.HashKey,
			TokenIssuer:  fc.App.TokenIssuer,
			LogLevel:     fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: fc.Storage.DB.Driver,
				DSN:    fc.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			EventsAddress:  fc.Adapter.EventsAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Sync: Sync{
			ConversationPageSize:         fc.Sync.ConversationPageSize,
			PendingEventsPerConversation: fc.Sync.PendingEventsPerConversation,
			PendingConversations:         fc.Sync.PendingConversations,
			IngressBufferSize:            fc.Sync.IngressBufferSize,
		},
		Workers: Workers{
			SyncInterval: time.Duration(fc.Workers.SyncInterval),
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in both JSON and YAML, as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
