package session_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minicat/core/session"
)

var tokenFormat = regexp.MustCompile(`^[0-9A-F]{32}$`)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	const n = 10000
	seen := make(map[string]struct{}, n)
	for range n {
		tok, err := session.GenerateToken()
		require.NoError(t, err)
		require.Regexp(t, tokenFormat, tok)
		seen[tok] = struct{}{}
	}
	assert.Len(t, seen, n)
}
