package controllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantTimeEqual(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "equal", a: "sha256=abc123", b: "sha256=abc123", want: true},
		{name: "empty both", a: "", b: "", want: true},
		{name: "one byte differs", a: "sha256=abc123", b: "sha256=abc124", want: false},
		{name: "first byte differs", a: "xha256=abc123", b: "sha256=abc123", want: false},
		{name: "unequal lengths", a: "sha256=abc", b: "sha256=abc123", want: false},
		{name: "prefix of other", a: "abc", b: "abc123", want: false},
		{name: "empty vs non-empty", a: "", b: "x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, constantTimeEqual([]byte(tt.a), []byte(tt.b)))
		})
	}
}

func TestComputeSignatureFormat(t *testing.T) {
	sig := ComputeSignature([]byte(`{"object":"page"}`), "app-secret")

	assert.True(t, strings.HasPrefix(sig, "sha256="))
	assert.Len(t, sig, len("sha256=")+64) // hex-encoded SHA-256 digest

	// Deterministic for identical inputs, different under another secret.
	assert.Equal(t, sig, ComputeSignature([]byte(`{"object":"page"}`), "app-secret"))
	assert.NotEqual(t, sig, ComputeSignature([]byte(`{"object":"page"}`), "other-secret"))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"object":"page","entry":[]}`)
	secret := "app-secret"
	valid := ComputeSignature(body, secret)

	tests := []struct {
		name   string
		body   []byte
		header string
		secret string
		want   bool
	}{
		{name: "valid", body: body, header: valid, secret: secret, want: true},
		{name: "tampered body", body: []byte(`{"object":"page","entry":[{}]}`), header: valid, secret: secret, want: false},
		{name: "wrong secret", body: body, header: valid, secret: "other", want: false},
		{name: "missing header", body: body, header: "", secret: secret, want: false},
		{name: "no sha256 prefix", body: body, header: strings.TrimPrefix(valid, "sha256="), secret: secret, want: false},
		{name: "sha1 header", body: body, header: "sha1=deadbeef", secret: secret, want: false},
		{name: "unconfigured secret", body: body, header: valid, secret: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifySignature(tt.body, tt.header, tt.secret))
		})
	}
}
