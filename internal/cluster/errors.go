// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrProviderUnavailable wraps every failure to obtain the index list.
var ErrProviderUnavailable = errors.New("index provider unavailable")

// StatusError is a non-2xx response from the cluster.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("unexpected status %d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
}

// ErrorContext carries input context for improving provider error messages.
type ErrorContext struct {
	Endpoint  string
	Operation string // e.g., "list indices"
}

// Friendly wraps a provider error with a contextual, user-friendly message.
// The result matches ErrProviderUnavailable and still exposes the original
// error via errors.Is/As.
func Friendly(err error, ctx ErrorContext) error {
	if err == nil {
		return nil
	}

	op := nonEmpty(ctx.Operation, "request")
	endpoint := nonEmpty(ctx.Endpoint, "<unknown>")

	var se *StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s on %s: authentication failed (%d). Check --http-auth or the AWS credential chain: %w",
				ErrProviderUnavailable, op, endpoint, se.Code, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s on %s: not found (404). Check --url-prefix: %w",
				ErrProviderUnavailable, op, endpoint, err)
		}
	}

	return fmt.Errorf("%w: %s on %s: %w", ErrProviderUnavailable, op, endpoint, err)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
