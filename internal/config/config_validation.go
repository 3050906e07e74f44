// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
)

// validate checks the settings every source combination must satisfy.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.PageSize < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !isURL(cfg.Adapter.GraphQLURL, "http", "https") ||
		!isURL(cfg.Adapter.RealtimeURL, "ws", "wss") ||
		cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PageSize <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.CacheDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.BlobStore.Bucket == "" || cfg.BlobStore.Region == "" {
		return ErrInvalidBlobStoreConfigs
	}
	// static credentials come in pairs
	if (cfg.BlobStore.AccessKeyID == "") != (cfg.BlobStore.SecretAccessKey == "") {
		return ErrInvalidBlobStoreConfigs
	}

	if cfg.Identity.TokenFile == "" {
		return ErrInvalidIdentityConfigs
	}

	if cfg.Crypto.Algorithm == "" {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func isURL(raw string, schemes ...string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return true
		}
	}
	return false
}
