// File: validation.go
// Title: Configuration Validation
// Description: Checks configuration values against declarative rules for
//              presence, type, bounds and string patterns.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-06
// Modified: 2026-02-06
//
// Change History:
// - 2026-02-06 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	bperror "github.com/msto63/botparse/foundation/core/error"
)

// ValidationRule defines validation criteria for one configuration key
type ValidationRule struct {
	Required bool
	// Type is one of "string", "int", "bool", "duration", "map"
	Type string
	// Min and Max bound numbers and the length of strings
	Min *int
	Max *int
	// Pattern must match string values
	Pattern string
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result, otherwise a VALIDATION_FAILED error
// listing every failure
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return bperror.New("configuration is invalid: " + strings.Join(r.Errors, "; ")).
		WithCode(bperror.CodeValidationFailed).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Bound is a helper for ValidationRule.Min and Max
func Bound(n int) *int {
	return &n
}

// Validate checks the configuration against rules. Keys are checked in
// sorted order so the error list is stable. Environment overrides are not
// consulted.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)
	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "":
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		if _, ok := asInt(value); !ok {
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	case "duration":
		s, ok := value.(string)
		if !ok {
			if _, isInt := asInt(value); !isInt {
				return fmt.Errorf("field '%s' must be a duration, got %T", key, value)
			}
			break
		}
		if _, err := time.ParseDuration(s); err != nil {
			return fmt.Errorf("field '%s' must be a valid duration string, got '%s'", key, s)
		}
	case "map":
		if _, ok := value.(map[string]interface{}); !ok {
			return fmt.Errorf("field '%s' must be a table, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}

	if err := validateBounds(key, value, rule); err != nil {
		return err
	}

	if rule.Pattern != "" {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' pattern validation requires string value", key)
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
		}
		if !re.MatchString(s) {
			return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, s, rule.Pattern)
		}
	}
	return nil
}

func validateBounds(key string, value interface{}, rule ValidationRule) error {
	var n int
	var what string
	if s, ok := value.(string); ok {
		n, what = len(s), "length"
	} else if i, ok := asInt(value); ok {
		n, what = i, "value"
	} else {
		return nil
	}

	if rule.Min != nil && n < *rule.Min {
		return fmt.Errorf("field '%s' %s %d is less than minimum %d", key, what, n, *rule.Min)
	}
	if rule.Max != nil && n > *rule.Max {
		return fmt.Errorf("field '%s' %s %d is greater than maximum %d", key, what, n, *rule.Max)
	}
	return nil
}

// asInt accepts the integer representations TOML and YAML decode to
func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int64(v)) {
			return int(v), true
		}
	}
	return 0, false
}
