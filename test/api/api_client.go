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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"
	"github.com/onsi/ginkgo/v2"
)

//go:generate mockgen -source=api_client.go -destination=mock/interfaces.go -package=mock

// HTTPDoer sends a single HTTP request, *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type APIClient struct {
	baseURL   string
	client    HTTPDoer
	authToken string
	config    *TestConfig
	endpoints *Endpoints
	validator *SchemaValidator
}

func NewAPIClientWithConfig(config *TestConfig) (*APIClient, error) {
	return NewAPIClientWithHTTPClient(config, &http.Client{
		Timeout: config.RequestTimeout,
	})
}

// NewAPIClientWithHTTPClient creates a client that sends requests through doer.
func NewAPIClientWithHTTPClient(config *TestConfig, doer HTTPDoer) (*APIClient, error) {
	client := &APIClient{
		baseURL:   strings.TrimSuffix(config.BaseURL, "/"),
		client:    doer,
		authToken: config.AuthToken,
		config:    config,
		endpoints: NewEndpoints(),
	}

	if config.ValidateResponses {
		validator, err := loadSchemaValidator()
		if err != nil {
			return nil, err
		}

		client.validator = validator
	}

	return client, nil
}

// WithAuthToken returns a copy of the client that authenticates with token.
// An empty token sends no Authorization header at all.
func (c *APIClient) WithAuthToken(token string) *APIClient {
	clone := *c
	clone.authToken = token

	return &clone
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// jsonBody encodes a request payload.
func jsonBody(payload any) (io.Reader, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return bytes.NewReader(data), nil
}

// doRequest sends a request and reads the whole response.  An expectedStatus of
// zero disables the status check and leaves interpretation to the caller.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, expectedStatus int) (*http.Response, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if body != nil || c.authToken != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")

		return nil, nil, &TransportError{
			Method:  method,
			Path:    path,
			TraceID: extractTraceID(traceParent),
			Err:     err,
		}
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err, "reading response body")

		return resp, nil, &TransportError{
			Method:  method,
			Path:    path,
			TraceID: extractTraceID(traceParent),
			Err:     fmt.Errorf("reading response body: %w", err),
		}
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)

		return resp, respBody, &StatusError{
			Method:   method,
			Path:     path,
			Expected: expectedStatus,
			Actual:   resp.StatusCode,
			Body:     string(respBody),
			TraceID:  extractTraceID(traceParent),
		}
	}

	if c.validator != nil {
		if err := c.validator.ValidateResponse(ctx, req, resp, respBody); err != nil {
			c.logError(method, path, duration, traceParent, err, "validating response")
			return resp, respBody, err
		}
	}

	return resp, respBody, nil
}

// getResource issues a GET and decodes the body of a 200 response.
func getResource[T any](ctx context.Context, c *APIClient, path, resourceType string) (T, error) {
	var resource T

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return resource, fmt.Errorf("getting %s: %w", resourceType, err)
	}

	if err := json.Unmarshal(respBody, &resource); err != nil {
		return resource, fmt.Errorf("unmarshaling %s response: %w", resourceType, err)
	}

	return resource, nil
}

// addQueryParameter form encodes a single query parameter the same way
// generated OpenAPI clients do.
func addQueryParameter(query url.Values, name string, value any) error {
	queryFrag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return fmt.Errorf("styling query parameter %s: %w", name, err)
	}

	parsed, err := url.ParseQuery(queryFrag)
	if err != nil {
		return fmt.Errorf("parsing query parameter %s: %w", name, err)
	}

	for k, v := range parsed {
		for _, v2 := range v {
			query.Add(k, v2)
		}
	}

	return nil
}

// bookFilterQuery encodes an optional book filter.
func bookFilterQuery(filter *BookFilter) (string, error) {
	if filter == nil {
		return "", nil
	}

	query := url.Values{}

	if filter.Limit != nil {
		if err := addQueryParameter(query, "limit", *filter.Limit); err != nil {
			return "", err
		}
	}

	if filter.Type != nil {
		if err := addQueryParameter(query, "type", string(*filter.Type)); err != nil {
			return "", err
		}
	}

	if len(query) == 0 {
		return "", nil
	}

	return "?" + query.Encode(), nil
}

// GetStatus checks the service is up.
func (c *APIClient) GetStatus(ctx context.Context) (*Status, error) {
	status, err := getResource[Status](ctx, c, c.endpoints.Status(), "status")
	if err != nil {
		return nil, err
	}

	return &status, nil
}

// ListBooks lists the catalog, optionally filtered.
func (c *APIClient) ListBooks(ctx context.Context, filter *BookFilter) ([]Book, error) {
	query, err := bookFilterQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}

	return getResource[[]Book](ctx, c, c.endpoints.ListBooks()+query, "books")
}

// GetBook retrieves a single book by identifier.
func (c *APIClient) GetBook(ctx context.Context, bookID int) (*Book, error) {
	book, err := getResource[Book](ctx, c, c.endpoints.GetBook(bookID), "book")
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// ListOrders lists all orders created with the client's token.
func (c *APIClient) ListOrders(ctx context.Context) ([]Order, error) {
	return getResource[[]Order](ctx, c, c.endpoints.ListOrders(), "orders")
}

// CreateOrder places a new order.
func (c *APIClient) CreateOrder(ctx context.Context, order OrderRequest) (*OrderCreated, error) {
	body, err := jsonBody(order)
	if err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateOrder(), body, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	var created OrderCreated
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("unmarshaling order response: %w", err)
	}

	return &created, nil
}

// GetOrder retrieves a single order.
func (c *APIClient) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	order, err := getResource[Order](ctx, c, c.endpoints.GetOrder(orderID), "order")
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateOrder patches an existing order, the service replies with no content.
func (c *APIClient) UpdateOrder(ctx context.Context, orderID string, update OrderUpdate) error {
	body, err := jsonBody(update)
	if err != nil {
		return err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, _, err = c.doRequest(ctx, http.MethodPatch, c.endpoints.UpdateOrder(orderID), body, http.StatusNoContent)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	return nil
}

// DeleteOrder removes an order.
func (c *APIClient) DeleteOrder(ctx context.Context, orderID string) error {
	//nolint:bodyclose // response body is closed in doRequest
	_, _, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeleteOrder(orderID), nil, http.StatusNoContent)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	return nil
}
