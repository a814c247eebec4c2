package envutil

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kiteco/pyresolve/kite-golib/errors"
)

// GetenvDefault gets the value of an environment variable, or returns the
// specified default value if that variable is not set.
func GetenvDefault(name, defaultValue string) string {
	val, found := os.LookupEnv(name)
	if !found {
		return defaultValue
	}
	return val
}

// GetenvDefaultInt gets an environment variable as an int, or else returns the default
func GetenvDefaultInt(name string, defaultVal int) (int, error) {
	val, found := os.LookupEnv(name)
	if !found || val == "" {
		return defaultVal, nil
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal, errors.Wrapf(err, "environment variable %s should be an integer", name)
	}
	return intVal, nil
}

// GetenvDefaultBool gets an environment variable as a bool, or else returns the
// default. Values are parsed with strconv.ParseBool.
func GetenvDefaultBool(name string, defaultVal bool) (bool, error) {
	val, found := os.LookupEnv(name)
	if !found || val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal, errors.Wrapf(err, "environment variable %s should be a boolean", name)
	}
	return b, nil
}

// MustSetenv sets the envirnment variable `key` to value `value` and `panic`s if there is an error.
func MustSetenv(key, value string) {
	err := os.Setenv(key, value)
	if err != nil {
		panic(fmt.Errorf("error setting environment variable %s to %s: %v", key, value, err))
	}
}
