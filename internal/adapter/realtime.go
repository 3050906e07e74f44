// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

// graphql-transport-ws message types.
const (
	graphQLWSProtocol = "graphql-transport-ws"

	msgConnectionInit = "connection_init"
	msgConnectionAck  = "connection_ack"
	msgPing           = "ping"
	msgPong           = "pong"
	msgSubscribe      = "subscribe"
	msgNext           = "next"
	msgError          = "error"
	msgComplete       = "complete"

	statusUnauthorized websocket.StatusCode = 4401
	statusForbidden    websocket.StatusCode = 4403
)

type wsMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func newWSMessage(id, typ string, payload any) (wsMessage, error) {
	msg := wsMessage{ID: id, Type: typ}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return wsMessage{}, err
		}
		msg.Payload = raw
	}
	return msg, nil
}

// Subscribe implements [ServerAdapter]. Every subscription runs on its own
// connection.
func (h *graphQLServerAdapter) Subscribe(ctx context.Context, changeType models.ChangeType, owner string, handler SubscriptionHandler) (Subscription, error) {
	op, ok := subscriptionOperations[changeType]
	if !ok {
		return nil, fmt.Errorf("%w: change type %q", ErrInvalidArgument, changeType)
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: handler is nil", ErrInvalidArgument)
	}

	token, err := h.tokens.AuthorizationToken(ctx)
	if err != nil {
		return nil, err
	}
	authorization := "Bearer " + token

	dialCtx, cancelDial := context.WithTimeout(ctx, h.timeout)
	defer cancelDial()

	conn, _, err := websocket.Dial(dialCtx, h.realtimeURL, &websocket.DialOptions{
		Subprotocols: []string{graphQLWSProtocol},
		HTTPHeader:   http.Header{"Authorization": {authorization}},
	})
	if err != nil {
		h.logger.Err(err).Str("func", "*graphQLServerAdapter.Subscribe").Str("change_type", string(changeType)).Msg("dial failed")
		return nil, fmt.Errorf("%w: dial realtime: %w", ErrTransport, err)
	}

	if err = h.handshake(dialCtx, conn, authorization); err != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "handshake failed")
		return nil, err
	}

	id := uuid.NewString()
	msg, err := newWSMessage(id, msgSubscribe, graphQLRequest{
		Query:         op.query,
		OperationName: op.name,
		Variables:     map[string]any{"owner": owner},
	})
	if err != nil {
		_ = conn.Close(websocket.StatusInternalError, "encode subscribe")
		return nil, fmt.Errorf("encode subscribe: %w", err)
	}
	if err = wsjson.Write(dialCtx, conn, msg); err != nil {
		_ = conn.Close(websocket.StatusInternalError, "subscribe failed")
		return nil, fmt.Errorf("%w: subscribe: %w", ErrTransport, err)
	}

	runCtx, stop := context.WithCancel(context.Background())
	sub := &wsSubscription{
		id:     id,
		op:     op,
		conn:   conn,
		stop:   stop,
		done:   make(chan struct{}),
		logger: h.logger,
	}
	go sub.run(runCtx, handler)

	h.logger.Debug().Str("func", "*graphQLServerAdapter.Subscribe").Str("change_type", string(changeType)).Str("subscription_id", id).Msg("subscribed")
	return sub, nil
}

// handshake sends connection_init and waits for connection_ack.
func (h *graphQLServerAdapter) handshake(ctx context.Context, conn *websocket.Conn, authorization string) error {
	initMsg, err := newWSMessage("", msgConnectionInit, map[string]string{"Authorization": authorization})
	if err != nil {
		return err
	}
	if err = wsjson.Write(ctx, conn, initMsg); err != nil {
		return fmt.Errorf("%w: connection_init: %w", ErrTransport, err)
	}

	for {
		var msg wsMessage
		if err = wsjson.Read(ctx, conn, &msg); err != nil {
			return mapCloseError(err)
		}
		switch msg.Type {
		case msgConnectionAck:
			return nil
		case msgPing:
			if err = wsjson.Write(ctx, conn, wsMessage{Type: msgPong}); err != nil {
				return fmt.Errorf("%w: pong: %w", ErrTransport, err)
			}
		default:
			return fmt.Errorf("%w: unexpected %q before connection_ack", ErrInvalidResponse, msg.Type)
		}
	}
}

func mapCloseError(err error) error {
	switch websocket.CloseStatus(err) {
	case statusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case statusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return fmt.Errorf("%w: %w", ErrSubscriptionClosed, err)
}

type wsSubscription struct {
	id   string
	op   subscriptionOperation
	conn *websocket.Conn

	stop      context.CancelFunc
	done      chan struct{}
	once      sync.Once
	cancelled atomic.Bool

	logger *logger.Logger
}

// Cancel implements [Subscription].
func (s *wsSubscription) Cancel() {
	s.once.Do(func() {
		s.cancelled.Store(true)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_ = wsjson.Write(ctx, s.conn, wsMessage{ID: s.id, Type: msgComplete})
		cancel()

		_ = s.conn.Close(websocket.StatusNormalClosure, "subscription cancelled")
		s.stop()
	})
}

func (s *wsSubscription) run(ctx context.Context, handler SubscriptionHandler) {
	defer close(s.done)
	defer s.stop()

	for {
		var msg wsMessage
		if err := wsjson.Read(ctx, s.conn, &msg); err != nil {
			s.terminate(handler, mapCloseError(err))
			return
		}

		switch msg.Type {
		case msgNext:
			if msg.ID != s.id {
				continue
			}
			s.deliver(msg.Payload, handler)
		case msgError:
			var errs []graphQLError
			if err := json.Unmarshal(msg.Payload, &errs); err != nil || len(errs) == 0 {
				s.terminate(handler, fmt.Errorf("%w: subscription error", ErrGraphQL))
			} else {
				s.terminate(handler, mapGraphQLErrors(errs))
			}
			s.closeConn()
			return
		case msgComplete:
			s.terminate(handler, nil)
			s.closeConn()
			return
		case msgPing:
			_ = wsjson.Write(ctx, s.conn, wsMessage{Type: msgPong})
		}
	}
}

func (s *wsSubscription) deliver(payload json.RawMessage, handler SubscriptionHandler) {
	var resp graphQLResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		s.logger.Warn().Err(err).Str("func", "*wsSubscription.deliver").Str("operation", s.op.name).Msg("undecodable event")
		return
	}
	if len(resp.Errors) > 0 {
		s.logger.Warn().Err(mapGraphQLErrors(resp.Errors)).Str("func", "*wsSubscription.deliver").Str("operation", s.op.name).Msg("event carried errors")
		return
	}

	sudo, ok, err := s.op.decode(resp.Data)
	if err != nil || !ok {
		s.logger.Warn().Err(err).Str("func", "*wsSubscription.deliver").Str("operation", s.op.name).Msg("event without record")
		return
	}

	if s.cancelled.Load() {
		return
	}
	handler.SudoReceived(sudo)
}

func (s *wsSubscription) terminate(handler SubscriptionHandler, err error) {
	if s.cancelled.Swap(true) {
		return
	}
	s.logger.Debug().Err(err).Str("func", "*wsSubscription.terminate").Str("operation", s.op.name).Msg("subscription terminated")
	handler.Terminated(err)
}

func (s *wsSubscription) closeConn() {
	_ = s.conn.Close(websocket.StatusNormalClosure, "")
}
