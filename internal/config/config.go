// Package config loads the grokcli credentials file: flat KEY="VALUE" lines
// at a fixed path. No comments, no escapes, no multi-line values.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Path is where the config lives. Not overridable by environment.
const Path = "/etc/grok/config"

// Keys recognized in the config file.
const (
	KeyEndpoint      = "X-AI-ENDPOINT"
	KeyAPIKey        = "X-AI-KEY"
	KeyImageEndpoint = "X-AI-IMAGE-ENDPOINT"
)

// Config holds the loaded credentials. Immutable after Load; callers receive
// it by value and pass it down explicitly.
type Config struct {
	Endpoint      string // chat completion URL
	Key           string // credential sent as the X-API-KEY header
	ImageEndpoint string // image generation URL; empty disables image mode
}

// Load reads the config from the fixed Path.
func Load() (Config, error) {
	return LoadFile(Path)
}

// LoadFile reads and parses a config file. It fails if the file is missing
// or either required key is absent. The image endpoint is optional and
// defaults to empty.
func LoadFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	values := map[string]string{}
	for _, line := range strings.Split(string(b), "\n") {
		if k, v, ok := parseLine(line); ok {
			values[k] = v
		}
	}

	cfg := Config{
		Endpoint:      values[KeyEndpoint],
		Key:           values[KeyAPIKey],
		ImageEndpoint: values[KeyImageEndpoint],
	}
	if cfg.Endpoint == "" {
		return Config{}, fmt.Errorf("config %s: missing %s", path, KeyEndpoint)
	}
	if cfg.Key == "" {
		return Config{}, fmt.Errorf("config %s: missing %s", path, KeyAPIKey)
	}
	return cfg, nil
}

// parseLine splits one assignment on the first '='. Both sides are trimmed
// of whitespace and one layer of enclosing double quotes. Lines without an
// '=' are skipped.
func parseLine(line string) (key, value string, ok bool) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return unquote(parts[0]), unquote(parts[1]), true
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}

// Encode renders cfg in the on-disk format. The image endpoint line is
// written even when empty so a later edit has the key in place.
func Encode(cfg Config) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s=%q\n", KeyEndpoint, cfg.Endpoint)
	fmt.Fprintf(&b, "%s=%q\n", KeyAPIKey, cfg.Key)
	fmt.Fprintf(&b, "%s=%q\n", KeyImageEndpoint, cfg.ImageEndpoint)
	return []byte(b.String())
}
