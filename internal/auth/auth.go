// Package auth loads PlayMoney API credentials.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// HeaderAPIKey is the request header that carries the API key.
const HeaderAPIKey = "x-api-key"

// Source records where an API key came from.
type Source string

const (
	SourceNone   Source = "none"
	SourceConfig Source = "config"
	SourceFile   Source = "file"
)

// Credentials holds the API key used to authenticate requests.
// A zero APIKey means requests are sent unauthenticated.
type Credentials struct {
	APIKey string
	Source Source
}

// LoadCredentials resolves credentials from an inline key or a key file.
// Passing neither yields anonymous credentials; passing both is an error.
func LoadCredentials(apiKey, keyFile string) (*Credentials, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" && keyFile != "" {
		return nil, errors.New("api key and api key file are mutually exclusive")
	}

	if keyFile != "" {
		key, err := LoadAPIKey(keyFile)
		if err != nil {
			return nil, fmt.Errorf("load api key: %w", err)
		}
		return &Credentials{APIKey: key, Source: SourceFile}, nil
	}

	if apiKey != "" {
		return &Credentials{APIKey: apiKey, Source: SourceConfig}, nil
	}
	return &Credentials{Source: SourceNone}, nil
}

// LoadAPIKey reads an API key from a file. Surrounding whitespace is ignored.
func LoadAPIKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read key file: %w", err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("key file %s is empty", path)
	}
	if strings.ContainsAny(key, " \t\r\n") {
		return "", fmt.Errorf("key file %s must contain a single key", path)
	}
	return key, nil
}

// Authenticated reports whether an API key is present.
func (c *Credentials) Authenticated() bool {
	return c != nil && c.APIKey != ""
}

// Headers returns the authentication headers for a request.
func (c *Credentials) Headers() map[string]string {
	if !c.Authenticated() {
		return map[string]string{}
	}
	return map[string]string{HeaderAPIKey: c.APIKey}
}

// Redacted returns the key with all but its first four characters masked,
// suitable for logs.
func (c *Credentials) Redacted() string {
	if !c.Authenticated() {
		return "(none)"
	}
	if len(c.APIKey) <= 8 {
		return "****"
	}
	return c.APIKey[:4] + strings.Repeat("*", 8)
}
