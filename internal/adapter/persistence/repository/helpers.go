package repository

import (
	"os"
	"strings"
)

// getenvDefault returns def when key is unset or blank.
func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
