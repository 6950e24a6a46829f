package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const signaturePrefix = "sha256="

// ComputeSignature returns the value Meta puts in X-Hub-Signature-256 for a
// given raw body: "sha256=" plus the hex HMAC-SHA256 under the app secret.
func ComputeSignature(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature validates the signature header against the raw request
// body. The body must be the exact bytes received: verifying a re-serialized
// payload produces a different digest and always fails.
//
// Missing secret, missing header or a header without the sha256= prefix all
// count as invalid.
func VerifySignature(body []byte, header string, secret string) bool {
	if secret == "" {
		return false
	}
	header = strings.TrimSpace(header)
	if !strings.HasPrefix(header, signaturePrefix) {
		return false
	}
	return constantTimeEqual([]byte(header), []byte(ComputeSignature(body, secret)))
}

// constantTimeEqual compares two byte strings without leaking where they
// differ. Unequal lengths short-circuit to false.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
