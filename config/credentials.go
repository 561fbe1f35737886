package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// envKeys maps provider IDs to the environment variables that carry their
// API keys. Environment always wins over the on-disk store, so CI and
// one-off runs never need a credentials file.
var envKeys = map[string]string{
	"openai":     "OPENAI_API_KEY",
	"anthropic":  "ANTHROPIC_API_KEY",
	"google":     "GOOGLE_API_KEY",
	"xai":        "XAI_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
}

// CredentialStore manages API credentials for remote providers.
type CredentialStore struct {
	credentials map[string]string // providerID -> API key
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		credentials: make(map[string]string),
	}
}

// Get returns the API key for a provider. Environment variables take
// precedence over stored credentials; missing keys return "".
func (c *CredentialStore) Get(providerID string) string {
	if env, ok := envKeys[providerID]; ok {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return c.credentials[providerID]
}

// Set stores an API key for a provider (in memory; call Save to persist).
func (c *CredentialStore) Set(providerID, apiKey string) {
	c.credentials[providerID] = apiKey
}

func credentialsPath(dataDir string) string {
	return filepath.Join(dataDir, "credentials.json")
}

// Load reads the credentials file from the data directory. A missing file
// is not an error; the store starts empty.
func (c *CredentialStore) Load(dataDir string) error {
	path := credentialsPath(dataDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read credentials file: %w", err)
	}

	creds := make(map[string]string)
	if err := json.Unmarshal(data, &creds); err != nil {
		return fmt.Errorf("failed to parse credentials file: %w", err)
	}

	c.credentials = creds
	return nil
}

// Save writes the credentials file with user-only permissions.
func (c *CredentialStore) Save(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(c.credentials, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	// 0600: contains API keys
	if err := os.WriteFile(credentialsPath(dataDir), data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}
