package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithExistingYamlKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"maxIdleConns": 10,
			},
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{"camelCase leaf", "POSTGRES_SSLMODE", "postgres.sslMode"},
		{"nested camelCase leaf", "POSTGRES_MASTER_MAXIDLECONNS", "postgres.master.maxIdleConns"},
		{"auth cost", "AUTH_BCRYPTCOST", "auth.bcryptCost"},
		{"unknown segments pass through lowered", "HTTP_PORT", "http.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "maxidleconns", normalizeToken("max_idle-conns"))
	assert.Equal(t, "port", normalizeToken("PORT"))
}
