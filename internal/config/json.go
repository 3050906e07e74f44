// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the JSON file layout.
type StructuredJSONConfig struct {
	Adapter struct {
		GraphQLURL     string   `json:"graphql_url"`
		RealtimeURL    string   `json:"realtime_url"`
		RequestTimeout Duration `json:"request_timeout"`
		PageSize       int      `json:"page_size"`
	} `json:"adapter,omitempty"`

	Storage struct {
		CacheDir string `json:"cache_dir"`
		Compress bool   `json:"compress"`
		DB       struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	BlobStore struct {
		Bucket          string `json:"bucket"`
		Region          string `json:"region"`
		Endpoint        string `json:"endpoint"`
		PathStyle       bool   `json:"path_style"`
		AccessKeyID     string `json:"access_key_id"`
		SecretAccessKey string `json:"secret_access_key"`
		SessionToken    string `json:"session_token"`
	} `json:"blob_store,omitempty"`

	Identity struct {
		TokenFile  string `json:"token_file"`
		IdentityID string `json:"identity_id"`
	} `json:"identity,omitempty"`

	Crypto struct {
		Algorithm string `json:"algorithm"`
	} `json:"crypto,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			GraphQLURL:     jsonCfg.Adapter.GraphQLURL,
			RealtimeURL:    jsonCfg.Adapter.RealtimeURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			PageSize:       jsonCfg.Adapter.PageSize,
		},
		Storage: Storage{
			CacheDir: jsonCfg.Storage.CacheDir,
			Compress: jsonCfg.Storage.Compress,
			DB:       DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		BlobStore: BlobStore{
			Bucket:          jsonCfg.BlobStore.Bucket,
			Region:          jsonCfg.BlobStore.Region,
			Endpoint:        jsonCfg.BlobStore.Endpoint,
			PathStyle:       jsonCfg.BlobStore.PathStyle,
			AccessKeyID:     jsonCfg.BlobStore.AccessKeyID,
			SecretAccessKey: jsonCfg.BlobStore.SecretAccessKey,
			SessionToken:    jsonCfg.BlobStore.SessionToken,
		},
		Identity: Identity{
			TokenFile:  jsonCfg.Identity.TokenFile,
			IdentityID: jsonCfg.Identity.IdentityID,
		},
		Crypto:  Crypto{Algorithm: jsonCfg.Crypto.Algorithm},
		Workers: Workers{RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval)},
		Log:     Log{File: jsonCfg.Log.File},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
