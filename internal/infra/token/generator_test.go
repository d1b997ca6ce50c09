package token

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_Format(t *testing.T) {
	gen := NewGenerator()

	token, err := gen.Generate()

	require.NoError(t, err)
	assert.Len(t, token, 32)

	decoded, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, tokenBytes)
}

func TestGenerator_Generate_DistinctDraws(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := gen.Generate()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "generator produced a repeated token")
		seen[token] = struct{}{}
	}
}
