package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	token, err := mgr.Issue("user-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := mgr.Verify(token)
		assert.Error(t, err, "token %q should be rejected", token)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-one", time.Hour).Issue("user-1", "student")
	require.NoError(t, err)

	_, err = NewManager("secret-two", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	mgr := NewManager("test-secret", -time.Minute)

	token, err := mgr.Issue("user-1", "student")
	require.NoError(t, err)

	_, err = mgr.Verify(token)
	assert.Error(t, err)
}
