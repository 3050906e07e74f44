// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity provides the signed-in session: the subject of the ID
// token, the identity id and the access token attached to remote calls.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

// Tokens is the persisted session. It is the layout of the session token
// file.
type Tokens struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
	IdentityID  string `json:"identity_id"`
}

// Session implements [Provider] over an in-memory token set.
type Session struct {
	mu     sync.RWMutex
	tokens Tokens
	now    func() time.Time
}

// NewSession returns a session holding tokens. An empty IDToken means
// signed out.
func NewSession(tokens Tokens) *Session {
	return &Session{tokens: tokens, now: time.Now}
}

// LoadSession reads the session token file at path. A missing file yields a
// signed out session. identityID, when set, overrides the file value.
func LoadSession(path, identityID string) (*Session, error) {
	var tokens Tokens

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read session file: %w", err)
	default:
		if err := json.Unmarshal(data, &tokens); err != nil {
			return nil, fmt.Errorf("%w: decode session file: %w", models.ErrInvalidConfig, err)
		}
	}

	if identityID != "" {
		tokens.IdentityID = identityID
	}
	return NewSession(tokens), nil
}

// SetTokens replaces the session tokens, e.g. after a refresh.
func (s *Session) SetTokens(tokens Tokens) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokens
}

// SignOut forgets every token.
func (s *Session) SignOut() {
	s.SetTokens(Tokens{})
}

// SubjectID implements [Provider]. The ID token is parsed without signature
// verification; the backend verifies it on every request.
func (s *Session) SubjectID(_ context.Context) (string, error) {
	claims, err := s.idTokenClaims()
	if err != nil {
		return "", err
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("%w: id token has no subject", models.ErrNotSignedIn)
	}
	return sub, nil
}

// IdentityID implements [Provider]. Without an explicit identity id the
// subject is used.
func (s *Session) IdentityID(ctx context.Context) (string, error) {
	s.mu.RLock()
	identityID := s.tokens.IdentityID
	s.mu.RUnlock()

	if identityID != "" {
		if _, err := s.idTokenClaims(); err != nil {
			return "", err
		}
		return identityID, nil
	}
	return s.SubjectID(ctx)
}

// AuthorizationToken implements [Provider]. The access token is preferred;
// the ID token is sent when no access token is held.
func (s *Session) AuthorizationToken(_ context.Context) (string, error) {
	if _, err := s.idTokenClaims(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tokens.AccessToken != "" {
		return s.tokens.AccessToken, nil
	}
	return s.tokens.IDToken, nil
}

func (s *Session) idTokenClaims() (jwt.MapClaims, error) {
	s.mu.RLock()
	raw := s.tokens.IDToken
	s.mu.RUnlock()

	if raw == "" {
		return nil, models.ErrNotSignedIn
	}

	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrNotSignedIn, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: invalid token claims", models.ErrNotSignedIn)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrNotSignedIn, err)
	}
	if exp != nil && !s.now().Before(exp.Time) {
		return nil, fmt.Errorf("%w: id token expired", models.ErrNotSignedIn)
	}

	return claims, nil
}
