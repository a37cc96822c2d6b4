package util

import (
	"crypto/sha1" //nolint:gosec
	"encoding/base64"
)

// EncodeBase64Sha1 returns the base 64 encoded sha1 hash of the given string.
func EncodeBase64Sha1(str string) string {
	hash := sha1.Sum([]byte(str)) //nolint:gosec
	return base64.RawURLEncoding.EncodeToString(hash[:])
}
