// Package redact produces log- and audit-safe stand-ins for credentials.
package redact

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the first 16 hex characters of the BLAKE2b-256 digest
// of token, or "" for an empty token. It identifies a token across log lines
// without revealing it.
func Fingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

// Token masks all but the last four characters.
func Token(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
