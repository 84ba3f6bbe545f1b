package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	digest, err := hasher.Hash("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	require.NotEqual(t, "pw123", digest)

	require.True(t, hasher.Verify("pw123", digest))
	require.False(t, hasher.Verify("wrong", digest))
}

func TestPasswordHasher_DistinctDigests(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// bcrypt salts internally, so two digests of one input differ
	require.NotEqual(t, first, second)
	require.True(t, hasher.Verify("same-password", first))
	require.True(t, hasher.Verify("same-password", second))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher()

	require.False(t, hasher.Verify("pw123", ""))
	require.False(t, hasher.Verify("pw123", "not-a-bcrypt-digest"))
}
