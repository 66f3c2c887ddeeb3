// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (normally os.Args[1:]).
// Parsing stops at the first non-flag argument; the remainder is returned in
// [StructuredConfig.Args].
//
// Flags:
//
//	-a api base url (e.g. http://localhost:8000/api)
//	-request-timeout request timeout (e.g. "15s")
//	-refresh-timeout refresh exchange timeout (e.g. "10s", 0 = none)
//	-d local session database path
//	-c/-config json or toml file path with configs
//	-log-level log level
//	-log-file log file path
//	-metrics-address watch metrics endpoint in format [host]:[port]
//	-poll-interval watch poll interval
//	-listen dev server listen address in format [host]:[port]
//	-token-sign-key dev server token signing key
//	-access-ttl dev server access token lifetime
//	-refresh-ttl dev server refresh cookie lifetime
//	-admin-login / -admin-password dev server administrator
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("frontwall", flag.ContinueOnError)

	var listenAddress NetAddress
	var apiAddress string
	var requestTimeout, refreshTimeout, pollInterval time.Duration
	var dsn string
	var configPath string
	var logLevel, logFile string
	var metricsAddress NetAddress
	var tokenSignKey string
	var accessTTL, refreshTTL time.Duration
	var adminLogin, adminPassword string

	fs.StringVar(&apiAddress, "a", "", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&refreshTimeout, "refresh-timeout", 0, "Refresh exchange timeout (e.g., 10s)")
	fs.StringVar(&dsn, "d", "", "Local session database path")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.Var(&metricsAddress, "metrics-address", "Metrics endpoint address host:port")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Watch poll interval (e.g., 30s)")
	fs.Var(&listenAddress, "listen", "Dev server address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Dev server token signing key")
	fs.DurationVar(&accessTTL, "access-ttl", 0, "Dev server access token lifetime")
	fs.DurationVar(&refreshTTL, "refresh-ttl", 0, "Dev server refresh cookie lifetime")
	fs.StringVar(&adminLogin, "admin-login", "", "Dev server administrator login")
	fs.StringVar(&adminPassword, "admin-password", "", "Dev server administrator password")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel:       logLevel,
			LogFile:        logFile,
			MetricsAddress: metricsAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			RefreshTimeout: refreshTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
		DevServer: DevServer{
			Address:       listenAddress.String(),
			TokenSignKey:  tokenSignKey,
			AccessTTL:     accessTTL,
			RefreshTTL:    refreshTTL,
			AdminLogin:    adminLogin,
			AdminPassword: adminPassword,
		},
		FilePath: configPath,
		Args:     fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
