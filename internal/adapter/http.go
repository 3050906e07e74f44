// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-sudo-profiles/internal/config"
	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/internal/utils"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

const (
	throttleRetries = 2
	throttleWait    = 100 * time.Millisecond
	throttleMaxWait = time.Second
)

type graphQLServerAdapter struct {
	client *utils.HTTPClient

	endpoint    string
	realtimeURL string
	timeout     time.Duration

	tokens TokenSource
	logger *logger.Logger
}

// NewGraphQLServerAdapter constructs the GraphQL implementation of
// [ServerAdapter]. Queries are posted to cfg.GraphQLURL and subscriptions
// are opened on cfg.RealtimeURL.
func NewGraphQLServerAdapter(cfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (ServerAdapter, error) {
	endpoint, err := normalizeURL(cfg.GraphQLURL, "https")
	if err != nil {
		return nil, fmt.Errorf("%w: graphql url: %w", models.ErrInvalidConfig, err)
	}
	realtime, err := normalizeURL(cfg.RealtimeURL, "wss")
	if err != nil {
		return nil, fmt.Errorf("%w: realtime url: %w", models.ErrInvalidConfig, err)
	}
	if tokens == nil {
		return nil, fmt.Errorf("%w: token source is nil", models.ErrInvalidConfig)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	client := utils.NewHTTPClient(utils.WithThrottleRetries(throttleRetries, throttleWait, throttleMaxWait))
	client.
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &graphQLServerAdapter{
		client:      client,
		endpoint:    endpoint,
		realtimeURL: realtime,
		timeout:     timeout,
		tokens:      tokens,
		logger:      log,
	}, nil
}

func normalizeURL(raw, defaultScheme string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = defaultScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateSudo implements [ServerAdapter].
func (h *graphQLServerAdapter) CreateSudo(ctx context.Context) (models.RemoteSudo, error) {
	var data createSudoData
	vars := map[string]any{"input": map[string]any{
		"claims":  []models.SecureClaim{},
		"objects": []models.SecureObject{},
	}}
	if err := h.execute(ctx, "CreateSudo", createSudoMutation, vars, &data); err != nil {
		return models.RemoteSudo{}, err
	}

	sudo, ok := data.normalize()
	if !ok {
		return models.RemoteSudo{}, fmt.Errorf("%w: createSudo returned no record", ErrInvalidResponse)
	}
	return sudo, nil
}

// GetSudo implements [ServerAdapter].
func (h *graphQLServerAdapter) GetSudo(ctx context.Context, id string) (models.RemoteSudo, error) {
	var data getSudoData
	if err := h.execute(ctx, "GetSudo", getSudoQuery, map[string]any{"id": id}, &data); err != nil {
		return models.RemoteSudo{}, err
	}

	sudo, ok := data.normalize()
	if !ok {
		return models.RemoteSudo{}, fmt.Errorf("%w: sudo %q", ErrNotFound, id)
	}
	return sudo, nil
}

// ListSudos implements [ServerAdapter].
func (h *graphQLServerAdapter) ListSudos(ctx context.Context, limit int, nextToken *string) (models.SudoPage, error) {
	vars := map[string]any{}
	if limit > 0 {
		vars["limit"] = limit
	}
	if nextToken != nil {
		vars["nextToken"] = *nextToken
	}

	var data listSudosData
	if err := h.execute(ctx, "ListSudos", listSudosQuery, vars, &data); err != nil {
		return models.SudoPage{}, err
	}

	page, ok := data.normalize()
	if !ok {
		return models.SudoPage{}, fmt.Errorf("%w: listSudos returned no page", ErrInvalidResponse)
	}
	return page, nil
}

// UpdateSudo implements [ServerAdapter].
func (h *graphQLServerAdapter) UpdateSudo(ctx context.Context, req models.UpdateSudoRequest) (models.RemoteSudo, error) {
	if req.Claims == nil {
		req.Claims = []models.SecureClaim{}
	}
	if req.Objects == nil {
		req.Objects = []models.SecureObject{}
	}

	var data updateSudoData
	if err := h.execute(ctx, "UpdateSudo", updateSudoMutation, map[string]any{"input": req}, &data); err != nil {
		return models.RemoteSudo{}, err
	}

	sudo, ok := data.normalize()
	if !ok {
		return models.RemoteSudo{}, fmt.Errorf("%w: updateSudo returned no record", ErrInvalidResponse)
	}
	return sudo, nil
}

// DeleteSudo implements [ServerAdapter].
func (h *graphQLServerAdapter) DeleteSudo(ctx context.Context, id string, expectedVersion int) (models.RemoteSudo, error) {
	vars := map[string]any{"input": map[string]any{
		"id":              id,
		"expectedVersion": expectedVersion,
	}}

	var data deleteSudoData
	if err := h.execute(ctx, "DeleteSudo", deleteSudoMutation, vars, &data); err != nil {
		return models.RemoteSudo{}, err
	}

	sudo, ok := data.normalize()
	if !ok {
		return models.RemoteSudo{}, fmt.Errorf("%w: sudo %q", ErrNotFound, id)
	}
	return sudo, nil
}

// execute posts one GraphQL document and decodes its data into out.
func (h *graphQLServerAdapter) execute(ctx context.Context, operation, query string, vars map[string]any, out any) error {
	token, err := h.tokens.AuthorizationToken(ctx)
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetBody(graphQLRequest{Query: query, OperationName: operation, Variables: vars}).
		Post(h.endpoint)
	if err != nil {
		h.logger.Err(err).Str("func", "*graphQLServerAdapter.execute").Str("operation", operation).Msg("request failed")
		return fmt.Errorf("%w: %s: %w", ErrTransport, operation, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "*graphQLServerAdapter.execute").Str("operation", operation).Int("status", resp.StatusCode()).Msg("unexpected status")
		return err
	}

	var gqlResp graphQLResponse
	if err = json.Unmarshal(resp.Body(), &gqlResp); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, operation, err)
	}
	if len(gqlResp.Errors) > 0 {
		err = mapGraphQLErrors(gqlResp.Errors)
		h.logger.Debug().Err(err).Str("func", "*graphQLServerAdapter.execute").Str("operation", operation).Msg("graphql error")
		return err
	}

	if len(gqlResp.Data) == 0 || bytes.Equal(bytes.TrimSpace(gqlResp.Data), []byte("null")) {
		return fmt.Errorf("%w: %s: empty data", ErrInvalidResponse, operation)
	}
	if err = json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, operation, err)
	}

	return nil
}
