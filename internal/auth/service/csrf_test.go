package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgangayi/farmstead-auth/internal/auth/service"
)

func TestCSRFIssuer_Issue(t *testing.T) {
	issuer := service.NewCSRFIssuer()

	first, err := issuer.Issue()
	require.NoError(t, err)
	second, err := issuer.Issue()
	require.NoError(t, err)

	// 32 bytes base64url-encoded without padding.
	assert.Len(t, first, 43)
	assert.NotEqual(t, first, second)
}

func TestCSRFIssuer_Validate(t *testing.T) {
	issuer := service.NewCSRFIssuer()

	token, err := issuer.Issue()
	require.NoError(t, err)

	assert.True(t, issuer.Validate(token, token))
	assert.False(t, issuer.Validate("wrong", token))
	assert.False(t, issuer.Validate("", token))
	assert.False(t, issuer.Validate(token, ""))
}
