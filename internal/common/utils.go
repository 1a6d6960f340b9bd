package common

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"strings"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// CommandKey derives the command name a documentation file describes:
// its base name without the extension. ok is false when the file does not
// carry ext.
func CommandKey(fileName, ext string) (string, bool) {
	base := filepath.Base(fileName)
	if !strings.HasSuffix(base, ext) {
		return "", false
	}
	key := strings.TrimSuffix(base, ext)
	if key == "" {
		return "", false
	}
	return key, true
}
