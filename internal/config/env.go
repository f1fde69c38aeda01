package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// lookupFunc reads one environment variable
type lookupFunc func(key string) (string, bool)

// loadFromEnv overrides fields tagged `env:"NAME"` with the variables present
// in the process environment.
func loadFromEnv(config *Config) error {
	return applyEnv(reflect.ValueOf(config).Elem(), os.LookupEnv)
}

// applyEnv walks nested structs and sets every tagged field whose variable is
// present. All malformed values are reported together.
func applyEnv(val reflect.Value, lookup lookupFunc) error {
	var errs []error
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field, meta := val.Field(i), typ.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnv(field, lookup); err != nil {
				errs = append(errs, err)
			}
			continue
		}

		key := meta.Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := lookup(key)
		if !ok {
			continue
		}
		if err := setField(field, raw); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// setField parses raw into a string, integer or boolean field
func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", raw)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}
	return nil
}
