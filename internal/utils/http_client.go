// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the SDK packages.
package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. The embedded client exposes every resty
// method directly.
type HTTPClient struct {
	*resty.Client
}

// ClientOption configures an [HTTPClient].
type ClientOption func(*resty.Client)

// WithThrottleRetries retries a request answered with 429 Too Many Requests
// up to count times, backing off between wait and maxWait.
func WithThrottleRetries(count int, wait, maxWait time.Duration) ClientOption {
	return func(c *resty.Client) {
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			SetRetryMaxWaitTime(maxWait).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err == nil && r != nil && r.StatusCode() == http.StatusTooManyRequests
			})
	}
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient(opts ...ClientOption) *HTTPClient {
	c := resty.New()
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}
