package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIssuedToken(t *testing.T) {
	verifier, err := NewVerifier("secret", "talentia")
	require.NoError(t, err)

	token, err := verifier.Issue("company-1", "company", time.Hour)
	require.NoError(t, err)

	caller, err := verifier.Resolve("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, Caller{UserID: "company-1", Role: "COMPANY"}, caller)
}

func TestResolveRejectsMissingOrMalformedHeader(t *testing.T) {
	verifier, err := NewVerifier("secret", "")
	require.NoError(t, err)

	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic abc", "token-without-scheme"} {
		_, err := verifier.Resolve(header)
		assert.ErrorIs(t, err, ErrMissingCredential, "header %q", header)
	}
}

func TestResolveRejectsForeignSignatureAndExpiry(t *testing.T) {
	verifier, err := NewVerifier("secret", "talentia")
	require.NoError(t, err)
	other, err := NewVerifier("other-secret", "talentia")
	require.NoError(t, err)

	forged, err := other.Issue("student-1", "STUDENT", time.Hour)
	require.NoError(t, err)
	_, err = verifier.Resolve("Bearer " + forged)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	expired, err := verifier.Issue("student-1", "STUDENT", -time.Minute)
	require.NoError(t, err)
	_, err = verifier.Resolve("Bearer " + expired)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestResolveRejectsWrongIssuer(t *testing.T) {
	verifier, err := NewVerifier("secret", "talentia")
	require.NoError(t, err)
	foreign, err := NewVerifier("secret", "someone-else")
	require.NoError(t, err)

	token, err := foreign.Issue("student-1", "STUDENT", time.Hour)
	require.NoError(t, err)
	_, err = verifier.Resolve("Bearer " + token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestResolveRejectsTokenWithoutRole(t *testing.T) {
	verifier, err := NewVerifier("secret", "")
	require.NoError(t, err)

	token, err := verifier.Issue("student-1", "", time.Hour)
	require.NoError(t, err)
	_, err = verifier.Resolve("Bearer " + token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestNewVerifierRequiresSecret(t *testing.T) {
	_, err := NewVerifier("  ", "talentia")
	require.Error(t, err)
}
