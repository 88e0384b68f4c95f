/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrMissingConfiguration is returned when required configuration is unset.
	ErrMissingConfiguration = errors.New("missing required configuration")

	// ErrUnexpectedStatus is matched by every StatusError.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrSchemaViolation is returned when a response does not conform to
	// the API description.
	ErrSchemaViolation = errors.New("response does not match API schema")
)

// StatusError means the service answered, but not with the status the
// caller expected.  This is a behavioural failure of the service.
type StatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.Expected, e.Actual, e.Body, e.TraceID)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// TransportError means the service could not be reached or did not answer
// in time.  These are reported apart from StatusError so that network
// flakiness is not mistaken for a regression.
type TransportError struct {
	Method  string
	Path    string
	TraceID string
	Err     error
}

func (e *TransportError) Error() string {
	kind := "http request failed"
	if e.Timeout() {
		kind = "http request timed out"
	}

	return fmt.Sprintf("%s %s: %s: %v (trace ID: %s)", e.Method, e.Path, kind, e.Err, e.TraceID)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline being exceeded.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// IsTransportError reports whether err was caused by a transport failure.
func IsTransportError(err error) bool {
	var transportErr *TransportError

	return errors.As(err, &transportErr)
}

// IsTimeout reports whether err was caused by a request timeout.
func IsTimeout(err error) bool {
	var transportErr *TransportError

	return errors.As(err, &transportErr) && transportErr.Timeout()
}

// StatusCode returns the status code carried by a StatusError in err's chain.
func StatusCode(err error) (int, bool) {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return 0, false
	}

	return statusErr.Actual, true
}
