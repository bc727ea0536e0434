// Package configuration reads env-style configuration files into the
// configuration of scans and copies.
package configuration

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

type genericConfigProvider interface {
	Read(filenames ...string) (map[string]string, error)
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	configReader genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(configReader genericConfigProvider) *Handler {
	return &Handler{
		configReader: configReader,
	}
}

// ReadGeneric reads configuration files into a map (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	envMap, err := c.configReader.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config) failed to read: %w", err)
	}

	return envMap, nil
}

// MapKeyToString returns the trimmed value of a key, or an empty string.
func MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// MapKeyToBool returns the boolean value of a key. The boolean is false if
// the key is absent or holds no valid boolean (yes/no, true/false, 1/0).
func MapKeyToBool(envMap map[string]string, key string) (bool, bool) {
	value := strings.ToLower(MapKeyToString(envMap, key))
	if value == "" {
		return false, false
	}

	switch value {
	case "yes", "true", "1":
		return true, true
	case "no", "false", "0":
		return false, true
	}

	slog.Warn("Invalid boolean in configuration (was ignored)",
		"key", key,
		"value", value,
	)

	return false, false
}

// MapKeyToUint64 returns the unsigned integer value of a key. The boolean is
// false if the key is absent or holds no valid unsigned integer.
func MapKeyToUint64(envMap map[string]string, key string) (uint64, bool) {
	value := MapKeyToString(envMap, key)
	if value == "" {
		return 0, false
	}

	intValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		slog.Warn("Invalid number in configuration (was ignored)",
			"key", key,
			"value", value,
			"err", err,
		)

		return 0, false
	}

	return intValue, true
}

// MapKeyToList returns the non-empty comma separated elements of a key.
func MapKeyToList(envMap map[string]string, key string) []string {
	value := MapKeyToString(envMap, key)
	if value == "" {
		return nil
	}

	var list []string
	for _, elem := range strings.Split(value, ",") {
		if elem = strings.TrimSpace(elem); elem != "" {
			list = append(list, elem)
		}
	}

	return list
}
