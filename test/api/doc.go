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

// Package api provides integration test utilities for the Simple Books API.
//
// # Configuration
//
// Configuration comes from the environment, optionally seeded from a .env
// file, see LoadTestConfig.  The bearer token is never compiled in: set
// API_AUTH_TOKEN, a token can be registered with POST /api-clients on the
// service.
//
// # Failures
//
// Client errors fall into two classes.  A StatusError, or a wrapped
// ErrSchemaViolation, means the service answered incorrectly.  A
// TransportError means it could not be reached or timed out, and usually
// points at the network rather than the service.
//
// # Response Validation
//
// Responses are checked against an embedded OpenAPI description of the
// service (openapi.yaml) unless VALIDATE_RESPONSES is false.  The client is
// written by hand rather than generated from that document, so the two act as
// independent descriptions of the same contract.
package api
