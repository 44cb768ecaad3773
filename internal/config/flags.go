// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values bound to command-line flags until they are
// turned into a [StructuredConfig].
type Flags struct {
	cfg           StructuredConfig
	serverAddress NetAddress
}

// RegisterFlags binds all configuration flags to fs.
//
// Flags:
//
//	-a, --address          control API address in format [host]:[port]
//	-c, --config           JSON or YAML config file path
//	-d, --dsn              database DSN
//	    --driver           database driver (sqlite3|pgx)
//	-r, --remote           remote service base URL
//	    --events           remote notification stream URL
//	    --request-timeout  remote request timeout (e.g. "10s")
//	    --self-user        self user id
//	    --self-client      self client id
//	    --access-token     remote access token
//	    --hash-key         control API signing key
//	    --page-size        conversations per slow sync page
//	    --sync-interval    sync job period (e.g. "5s")
//	    --log-level        log level
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.serverAddress, "address", "a", "Control API address host:port")
	fs.StringVarP(&f.cfg.FilePath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVarP(&f.cfg.Storage.DB.DSN, "dsn", "d", "", "Database DSN")
	fs.StringVar(&f.cfg.Storage.DB.Driver, "driver", "", "Database driver (sqlite3|pgx)")
	fs.StringVarP(&f.cfg.Adapter.HTTPAddress, "remote", "r", "", "Remote service base URL")
	fs.StringVar(&f.cfg.Adapter.EventsAddress, "events", "", "Remote notification stream URL")
	fs.DurationVar(&f.cfg.Adapter.RequestTimeout, "request-timeout", 0, "Remote request timeout (e.g. 10s)")
	fs.StringVar(&f.cfg.App.SelfUserID, "self-user", "", "Self user id")
	fs.StringVar(&f.cfg.App.SelfClientID, "self-client", "", "Self client id")
	fs.StringVar(&f.cfg.App.AccessToken, "access-token", "", "Remote access token")
	fs.StringVar(&f.cfg.App.HashKey, "hash-key", "", "Control API signing key")
	fs.StringVar(&f.cfg.App.LogLevel, "log-level", "", "Log level")
	fs.IntVar(&f.cfg.Sync.ConversationPageSize, "page-size", 0, "Conversations per slow sync page")
	fs.DurationVar(&f.cfg.Workers.SyncInterval, "sync-interval", 0, "Sync job period (e.g. 5s)")

	return f
}

// Config returns the flag values as a [StructuredConfig].
// Flags that were not given stay zero.
func (f *Flags) Config() *StructuredConfig {
	cfg := f.cfg
	cfg.Server.HTTPAddress = f.serverAddress.String()
	return &cfg
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
