// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_GRAPHQL_URL":     "https://api.example/graphql",
		"ADAPTER_REALTIME_URL":    "wss://rt.example/graphql",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"ADAPTER_PAGE_SIZE":       "25",

		// Storage has a nested DB_ prefix
		"STORAGE_CACHE_DIR": "/var/cache/sudo",
		"STORAGE_COMPRESS":  "true",
		"STORAGE_DB_DSN":    "/var/lib/sudo/keys.db",

		"BLOB_BUCKET":            "sudo-blobs",
		"BLOB_REGION":            "eu-west-1",
		"BLOB_ENDPOINT":          "http://localhost:9000",
		"BLOB_PATH_STYLE":        "true",
		"BLOB_ACCESS_KEY_ID":     "AKIA",
		"BLOB_SECRET_ACCESS_KEY": "SECRET",
		"BLOB_SESSION_TOKEN":     "SESSION",

		"IDENTITY_TOKEN_FILE": "/var/lib/sudo/session.json",
		"IDENTITY_ID":         "eu-west-1:identity",

		"CRYPTO_ALGORITHM":         "XChaCha20/Poly1305",
		"WORKERS_REFRESH_INTERVAL": "5m",
		"LOG_FILE":                 "/var/log/sudo.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://api.example/graphql", cfg.Adapter.GraphQLURL)
	assert.Equal(t, "wss://rt.example/graphql", cfg.Adapter.RealtimeURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 25, cfg.Adapter.PageSize)

	assert.Equal(t, "/var/cache/sudo", cfg.Storage.CacheDir)
	assert.True(t, cfg.Storage.Compress)
	assert.Equal(t, "/var/lib/sudo/keys.db", cfg.Storage.DB.DSN)

	assert.Equal(t, BlobStore{
		Bucket:          "sudo-blobs",
		Region:          "eu-west-1",
		Endpoint:        "http://localhost:9000",
		PathStyle:       true,
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		SessionToken:    "SESSION",
	}, cfg.BlobStore)

	assert.Equal(t, "/var/lib/sudo/session.json", cfg.Identity.TokenFile)
	assert.Equal(t, "eu-west-1:identity", cfg.Identity.IdentityID)
	assert.Equal(t, "XChaCha20/Poly1305", cfg.Crypto.Algorithm)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/var/log/sudo.log", cfg.Log.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_GRAPHQL_URL": "https://api.example/graphql",
		"BLOB_BUCKET":         "sudo-blobs",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://api.example/graphql", cfg.Adapter.GraphQLURL)
	assert.Empty(t, cfg.Adapter.RealtimeURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "sudo-blobs", cfg.BlobStore.Bucket)
	assert.Empty(t, cfg.BlobStore.Region)

	// Others untouched
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Identity{}, cfg.Identity)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "duration", key: "ADAPTER_REQUEST_TIMEOUT", val: "invalid_duration"},
		{name: "int", key: "ADAPTER_PAGE_SIZE", val: "ten"},
		{name: "bool", key: "STORAGE_COMPRESS", val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"WORKERS_REFRESH_INTERVAL": tt.envValue})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Workers.RefreshInterval)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"ADAPTER_GRAPHQL_URL",
		"ADAPTER_REALTIME_URL",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_PAGE_SIZE",

		"STORAGE_CACHE_DIR",
		"STORAGE_COMPRESS",
		"STORAGE_DB_DSN",

		"BLOB_BUCKET",
		"BLOB_REGION",
		"BLOB_ENDPOINT",
		"BLOB_PATH_STYLE",
		"BLOB_ACCESS_KEY_ID",
		"BLOB_SECRET_ACCESS_KEY",
		"BLOB_SESSION_TOKEN",

		"IDENTITY_TOKEN_FILE",
		"IDENTITY_ID",
		"CRYPTO_ALGORITHM",
		"WORKERS_REFRESH_INTERVAL",
		"LOG_FILE",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}
