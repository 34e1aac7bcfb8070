// Package validation provides security validation for file paths supplied
// on the command line, preventing path traversal and access to sensitive
// system locations.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// restrictedPrefixes are system locations jsonscrub refuses to read from or
// write to, regardless of permissions.
var restrictedPrefixes = []string{
	"/etc/passwd",
	"/etc/shadow",
	"/proc/",
	"/sys/",
	"/dev/",
	"/boot/",
}

// ValidateInputPath validates a path supplied as a document input.
func ValidateInputPath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal detected: %s", path)
	}

	lower := strings.ToLower(cleanPath)
	for _, restricted := range restrictedPrefixes {
		if strings.HasPrefix(lower, restricted) {
			return fmt.Errorf("access to restricted path: %s", path)
		}
	}

	if strings.ContainsRune(cleanPath, '\x00') {
		return fmt.Errorf("path contains null byte")
	}

	return nil
}

// ValidateOutputPath validates a path the sanitized report will be written
// to. The same rules as inputs apply, plus the parent directory must be
// expressible (no device-style targets).
func ValidateOutputPath(path string) error {
	if err := ValidateInputPath(path); err != nil {
		return err
	}
	if strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("output path is a directory: %s", path)
	}
	return nil
}
