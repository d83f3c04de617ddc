package config

import "os"

// StorageDir returns the root directory templates are read from and
// rendered documents are written under.
func StorageDir() string {
	if dir := os.Getenv("STORAGE_DIR"); dir != "" {
		return dir
	}
	return "./storage"
}

// Port returns the HTTP listen port.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
