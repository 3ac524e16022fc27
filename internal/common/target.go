package common

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrBaseURLNotFound is returned when no backend base URL can be resolved.
var ErrBaseURLNotFound = errors.New("backend base URL not found")

// ResolveBaseURL returns the backend base URL. An explicit target.base_url wins;
// otherwise the KEY=VALUE env file is read and the configured key looked up.
func ResolveBaseURL(target TargetConfig) (string, error) {
	if u := strings.TrimSpace(target.BaseURL); u != "" {
		return strings.TrimRight(u, "/"), nil
	}

	if target.EnvFile == "" {
		return "", fmt.Errorf("%w: no env file configured", ErrBaseURLNotFound)
	}

	data, err := os.ReadFile(target.EnvFile)
	if err != nil {
		return "", fmt.Errorf("%w: error reading %s: %v", ErrBaseURLNotFound, target.EnvFile, err)
	}

	u := lookupEnvLine(string(data), target.EnvKey)
	if u == "" {
		return "", fmt.Errorf("%w: could not get %s from %s", ErrBaseURLNotFound, target.EnvKey, target.EnvFile)
	}

	return strings.TrimRight(u, "/"), nil
}

// lookupEnvLine returns the value of the first KEY=VALUE line for key, even if empty.
// Other lines are never parsed, so unrelated malformed entries are ignored.
func lookupEnvLine(content, key string) string {
	prefix := key + "="
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		values, err := godotenv.Unmarshal(line)
		if err != nil {
			return strings.TrimSpace(line[len(prefix):])
		}
		return strings.TrimSpace(values[key])
	}
	return ""
}

// APIBase returns the API root for a backend base URL.
func APIBase(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/api"
}
