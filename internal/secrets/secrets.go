// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the Mistral API credential. Credentials come
// from an explicit CLI value, the MISTRAL_API_KEY environment variable, or
// a directory of plain-text key files where the filename is the key name
// and the file contents (trimmed) are the value.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvAPIKey is the environment variable consulted for the API key.
	EnvAPIKey = "MISTRAL_API_KEY"

	// APIKeyFile is the key file name looked up in the secrets directory.
	APIKeyFile = "mistral-api-key"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr but
// do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// ResolveAPIKey returns the Mistral API key from the first available
// source: the explicit value, the MISTRAL_API_KEY environment variable, or
// the mistral-api-key entry of loaded. A missing key is a configuration
// error: it must be fixed outside the process, so no conversion is
// attempted.
func ResolveAPIKey(explicit string, loaded map[string]string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		return v, nil
	}
	if v := loaded[APIKeyFile]; v != "" {
		return v, nil
	}
	return "", fmt.Errorf("missing Mistral API key: pass --api-key, set %s, or create .secrets/%s", EnvAPIKey, APIKeyFile)
}
