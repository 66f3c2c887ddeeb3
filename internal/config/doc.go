// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the frontwall client and the development server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON, or TOML when the path ends in ".toml")
//
// The main entry points are [GetClientConfig] for the CLI and
// [GetDevServerConfig] for the development server.
package config
