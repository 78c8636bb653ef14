// Package parameters handles generic configuration Params, a map[string]string that the
// user can set with strings like "goals=3,hostile_swaps=false,prefer_goal".
//
// It is used to configure the game rules and the player modules.
package parameters

import (
	"slices"
	"strconv"
	"strings"

	"github.com/janpfeifer/pentaGo/internal/generics"
	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// Value is the set of types that can be parsed from a Params value.
type Value interface {
	bool | int | float64 | string
}

// NewFromConfigString create params from user's configuration string.
// Empty parts are ignored, and a key without "=" has an empty value.
// See GetParamOr and PopParamOr to parse values from this map.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=") // Only the first '=' splits, values may contain '='.
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return params
}

// String returns the params in the configuration string format, sorted by key.
func (params Params) String() string {
	parts := make([]string, 0, len(params))
	for key, value := range generics.SortedKeysAndValues(params) {
		if value == "" {
			parts = append(parts, key)
		} else {
			parts = append(parts, key+"="+value)
		}
	}
	return strings.Join(parts, ",")
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var parsed any
	switch any(defaultValue).(type) {
	case string:
		parsed = value
	case int:
		if value == "" {
			return defaultValue, nil
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
		}
		parsed = v
	case float64:
		if value == "" {
			return defaultValue, nil
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, value)
		}
		parsed = v
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1": // Empty value is considered "true"
			parsed = true
		case "false", "0":
			parsed = false
		default:
			return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
		}
	}
	return parsed.(T), nil
}

// CheckAllUsed returns an error listing the keys left in params, typically called after all
// known parameters were popped.
func CheckAllUsed(params Params) error {
	if len(params) == 0 {
		return nil
	}
	keys := slices.Collect(generics.SortedKeys(params))
	return errors.Errorf("unknown configuration parameters: %q", keys)
}
