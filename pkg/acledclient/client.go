// Package acledclient provides the main entry point for creating ACLED API
// clients.
package acledclient

import (
	"fmt"

	"github.com/tensix-io/acled-client/internal/client"
	"github.com/tensix-io/acled-client/pkg/acled"
)

// New creates a new ACLED API client from the given configuration.
func New(config *acled.Config) (acled.Client, error) {
	if config == nil {
		return nil, acled.ErrConfigRequired
	}

	if config.Key == "" {
		return nil, acled.ErrKeyRequired
	}

	if config.Email == "" {
		return nil, acled.ErrEmailRequired
	}

	config.BaseURL = client.NormalizeBaseURL(config.BaseURL)

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithCredentials creates a new client with just an API key and email.
func NewWithCredentials(key, email string) (acled.Client, error) {
	return New(&acled.Config{
		Key:   key,
		Email: email,
	})
}
