package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginValidator(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{
			name:    "exact match",
			allowed: []string{"https://app.example.com"},
			origin:  "https://app.example.com",
			want:    true,
		},
		{
			name:    "exact mismatch",
			allowed: []string{"https://app.example.com"},
			origin:  "https://evil.example.com",
			want:    false,
		},
		{
			name:    "allow all",
			allowed: []string{"*"},
			origin:  "https://anything.example",
			want:    true,
		},
		{
			name:    "wildcard subdomain",
			allowed: []string{"https://*.example.app"},
			origin:  "https://preview-42.example.app",
			want:    true,
		},
		{
			name:    "wildcard spans nested subdomains",
			allowed: []string{"https://*.example.app"},
			origin:  "https://a.b.example.app",
			want:    true,
		},
		{
			name:    "wildcard rejects suffix trick",
			allowed: []string{"https://*.example.app"},
			origin:  "https://evil.example.app.attacker.io",
			want:    false,
		},
		{
			name:    "wildcard rejects other scheme",
			allowed: []string{"https://*.example.app"},
			origin:  "http://preview.example.app",
			want:    false,
		},
		{
			name:    "empty list rejects everything",
			allowed: nil,
			origin:  "https://app.example.com",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validate := OriginValidator(tt.allowed)
			assert.Equal(t, tt.want, validate(tt.origin))
		})
	}
}
