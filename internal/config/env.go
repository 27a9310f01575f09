package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// loadFromEnv overrides configuration fields that carry an `env` tag with the
// value of that environment variable. Unset and blank variables are ignored.
func loadFromEnv(config *Config) error {
	return applyEnv(reflect.ValueOf(config).Elem())
}

func applyEnv(section reflect.Value) error {
	for _, field := range reflect.VisibleFields(section.Type()) {
		value := section.FieldByIndex(field.Index)

		if value.Kind() == reflect.Struct {
			if err := applyEnv(value); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := os.LookupEnv(key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}

		if err := setFromString(value, strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func setFromString(value reflect.Value, raw string) error {
	switch value.Kind() {
	case reflect.String:
		value.SetString(raw)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, value.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		value.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", raw)
		}
		value.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", value.Kind())
	}
	return nil
}
