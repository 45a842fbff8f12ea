package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tensix-io/acled-client/pkg/acled"
	"github.com/tensix-io/acled-client/pkg/acledclient"
)

// Common string constants used throughout the commands package.
const (
	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	Masked = "***"
)

// Common static errors used throughout the commands package.
var (
	ErrCredentialsRequired = errors.New("API key and email are required (use --key/--email, ACLED_KEY/ACLED_EMAIL, or 'acled config set')")
	ErrConflictingFilters  = errors.New("conflicting filter flags for the same field")
	ErrIncompleteDateRange = errors.New("--from and --to must be given together")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrValueRequired       = errors.New("a value is required")
)

// CreateClient builds a library client from the CLI configuration.
func CreateClient() (acled.Client, error) {
	key := viper.GetString("key")
	email := viper.GetString("email")

	if key == "" || email == "" {
		return nil, ErrCredentialsRequired
	}

	config := &acled.Config{
		Key:     key,
		Email:   email,
		BaseURL: viper.GetString("api"),
	}

	client, err := acledclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}
