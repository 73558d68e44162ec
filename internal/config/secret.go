package config

import (
	"fmt"
	"os"
	"strings"
)

// SecretSource describes where a secret value may come from.
type SecretSource struct {
	// Name is used in error messages.
	Name string
	// Value is the inline secret, usually read from the environment.
	Value string
	// File points to a file holding the secret. It wins over Value when set.
	File string
}

// LoadSecret returns the trimmed secret described by src, preferring File
// over Value. An error is returned when neither yields a non-empty value.
func LoadSecret(src SecretSource) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	value := src.Value
	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s from %q: %w", name, file, err)
		}
		value = string(data)
	}

	secret := strings.TrimSpace(value)
	if secret == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return "", fmt.Errorf("%s is not set", name)
	}

	return secret, nil
}
