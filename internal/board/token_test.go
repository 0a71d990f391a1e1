package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

func TestIssueShape(t *testing.T) {
	token := NewTokenIssuer().Issue()
	require.Len(t, token, TokenLength)
	assert.True(t, isHex(token), "token must be lowercase hex: %q", token)
}

func TestIssueUnique(t *testing.T) {
	issuer := NewTokenIssuer()
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		token := issuer.Issue()
		require.Len(t, token, TokenLength)
		require.False(t, seen[token], "duplicate token after %d issuances", i)
		seen[token] = true
	}
}

func TestFallbackTokenShape(t *testing.T) {
	token := fallbackToken()
	require.Len(t, token, TokenLength)
	assert.True(t, isHex(token))
	assert.NotEqual(t, token, fallbackToken())
}
