package utils

import (
	"path"
	"strings"
)

// SanitizePrefix normalizes a client supplied object key prefix. It
// strips traversal segments and leading slashes so uploads cannot
// escape their bucket folder. An empty or fully rejected prefix maps
// to "uploads".
func SanitizePrefix(prefix string) string {
	prefix = strings.ReplaceAll(prefix, "\\", "/")
	cleaned := path.Clean("/" + prefix)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return "uploads"
	}
	return cleaned
}
