// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrVersionConflict, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// graphQLErrorTypes maps the errorType reported by the service.
var graphQLErrorTypes = map[string]error{
	"DynamoDB:ConditionalCheckFailedException":      ErrVersionConflict,
	"sudoplatform.sudo.VersionMismatchError":        ErrVersionConflict,
	"sudoplatform.InsufficientEntitlementsError":    ErrInsufficientEntitlements,
	"sudoplatform.InvalidArgumentError":             ErrInvalidArgument,
	"sudoplatform.LimitExceededError":               ErrRateLimited,
	"sudoplatform.ServiceError":                     ErrServerError,
	"sudoplatform.sudo.SudoNotFound":                ErrNotFound,
	"UnauthorizedException":                         ErrUnauthorized,
	"Unauthorized":                                  ErrUnauthorized,
	"ThrottlingException":                           ErrRateLimited,
	"sudoplatform.identity.UserNotConfirmedError":   ErrForbidden,
	"sudoplatform.identity.TokenValidationError":    ErrUnauthorized,
	"sudoplatform.identity.AccountLockedError":      ErrForbidden,
	"sudoplatform.identity.InvalidTokenError":       ErrUnauthorized,
	"sudoplatform.identity.AuthenticationRequired":  ErrUnauthorized,
	"sudoplatform.identity.OwnershipProofMismatch":  ErrForbidden,
	"sudoplatform.identity.UnsupportedRequestError": ErrBadRequest,
}

// mapGraphQLErrors maps the first error of a GraphQL response. The other
// messages are kept in the error text.
func mapGraphQLErrors(errs []graphQLError) error {
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.ErrorType != "" {
			msgs = append(msgs, e.ErrorType+": "+e.Message)
		} else {
			msgs = append(msgs, e.Message)
		}
	}
	detail := strings.Join(msgs, "; ")

	if sentinel, ok := graphQLErrorTypes[errs[0].ErrorType]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("%w: %s", ErrGraphQL, detail)
}

// IsRetryable reports whether err is a transient failure worth retrying by
// the caller.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrServerError) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTransport)
}
