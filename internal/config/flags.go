// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client configuration flags from args.
//
// Flags:
//
//	-graphql-url GraphQL HTTP endpoint
//	-realtime-url graphql-ws endpoint
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-page-size list page size
//	-cache-dir cache directory
//	-compress compress cached blobs
//	-d key store DSN
//	-bucket / -region / -s3-endpoint / -s3-path-style object store
//	-token-file session token file
//	-identity-id identity id override
//	-algorithm default encryption algorithm
//	-refresh-interval background refresh interval
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("sudo-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		graphQLURL, realtimeURL string
		requestTimeout          time.Duration
		pageSize                int
		cacheDir                string
		compress                bool
		dsn                     string
		bucket, region          string
		endpoint                string
		pathStyle               bool
		tokenFile, identityID   string
		algorithm               string
		refreshInterval         time.Duration
		logFile                 string
		jsonConfigPath          string
	)

	fs.StringVar(&graphQLURL, "graphql-url", "", "GraphQL HTTP endpoint")
	fs.StringVar(&realtimeURL, "realtime-url", "", "GraphQL subscription endpoint")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&pageSize, "page-size", 0, "List page size")
	fs.StringVar(&cacheDir, "cache-dir", "", "Cache directory")
	fs.BoolVar(&compress, "compress", false, "Compress cached blobs")
	fs.StringVar(&dsn, "d", "", "Key store DSN")
	fs.StringVar(&bucket, "bucket", "", "Blob store bucket")
	fs.StringVar(&region, "region", "", "Blob store region")
	fs.StringVar(&endpoint, "s3-endpoint", "", "Blob store endpoint")
	fs.BoolVar(&pathStyle, "s3-path-style", false, "Use path style addressing")
	fs.StringVar(&tokenFile, "token-file", "", "Session token file")
	fs.StringVar(&identityID, "identity-id", "", "Identity id")
	fs.StringVar(&algorithm, "algorithm", "", "Default encryption algorithm")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			GraphQLURL:     graphQLURL,
			RealtimeURL:    realtimeURL,
			RequestTimeout: requestTimeout,
			PageSize:       pageSize,
		},
		Storage: Storage{
			CacheDir: cacheDir,
			Compress: compress,
			DB:       DB{DSN: dsn},
		},
		BlobStore: BlobStore{
			Bucket:    bucket,
			Region:    region,
			Endpoint:  endpoint,
			PathStyle: pathStyle,
		},
		Identity:     Identity{TokenFile: tokenFile, IdentityID: identityID},
		Crypto:       Crypto{Algorithm: algorithm},
		Workers:      Workers{RefreshInterval: refreshInterval},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
