// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the sudo profiles client.
//
// Configuration is assembled from several sources. For every field the
// first source holding a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetStructuredConfig] returns the merged raw configuration and
// [GetClientConfig] the validated view consumed by the client constructors.
package config
