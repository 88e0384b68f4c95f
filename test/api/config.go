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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the public Simple Books API.
	DefaultBaseURL = "https://simple-books-api.glitch.me"

	// DefaultInvalidAuthToken is sent by negative authentication scenarios.
	DefaultInvalidAuthToken = "INVALID_TOKEN"
)

type TestConfig struct {
	BaseURL           string
	AuthToken         string
	InvalidAuthToken  string
	RequestTimeout    time.Duration
	SkipIntegration   bool
	ValidateResponses bool
	CleanupOrders     bool
	DebugLogging      bool
	LogRequests       bool
	LogResponses      bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:           getStringWithDefault("API_BASE_URL", DefaultBaseURL),
		AuthToken:         os.Getenv("API_AUTH_TOKEN"),
		InvalidAuthToken:  getStringWithDefault("API_INVALID_AUTH_TOKEN", DefaultInvalidAuthToken),
		RequestTimeout:    getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		SkipIntegration:   getBoolWithDefault("SKIP_INTEGRATION", false),
		ValidateResponses: getBoolWithDefault("VALIDATE_RESPONSES", true),
		CleanupOrders:     getBoolWithDefault("CLEANUP_ORDERS", true),
		DebugLogging:      getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:       getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:      getBoolWithDefault("LOG_RESPONSES", false),
	}

	// Debug logging implies both request and response logging.
	if config.DebugLogging {
		config.LogRequests = true
		config.LogResponses = true
	}

	// Skipped runs never contact the service, so credentials are optional.
	if config.SkipIntegration {
		return config, nil
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		".env",
		"../../../test/.env", // From test/api/suites directory
		"../../../.env",
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// godotenv.Load never overrides variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"API_AUTH_TOKEN": config.AuthToken,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file, or the gh secrets", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}

// StatusEndpoint is the absolute URL of the status endpoint.
func (c *TestConfig) StatusEndpoint() string {
	return strings.TrimSuffix(c.BaseURL, "/") + NewEndpoints().Status()
}

// BooksEndpoint is the absolute URL of the books collection.
func (c *TestConfig) BooksEndpoint() string {
	return strings.TrimSuffix(c.BaseURL, "/") + NewEndpoints().ListBooks()
}

// OrdersEndpoint is the absolute URL of the orders collection.
func (c *TestConfig) OrdersEndpoint() string {
	return strings.TrimSuffix(c.BaseURL, "/") + NewEndpoints().ListOrders()
}
