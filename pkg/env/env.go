// Package env reads the handful of process variables that sit outside the
// envconfig-managed Config, such as the logger's output format toggle.
package env

import "os"

// Get returns the named variable, or the fallback when it is unset or empty.
func Get(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
