package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, h.Verify("s3cret-pass", hash))
	assert.False(t, h.Verify("wrong-pass", hash))
}

func TestBcryptHasher_SamePasswordDifferentHashes(t *testing.T) {
	h := NewBcryptHasher()

	h1, err := h.Hash("repeatable")
	require.NoError(t, err)
	h2, err := h.Hash("repeatable")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "salted hashes must differ across calls")
	assert.True(t, h.Verify("repeatable", h1))
	assert.True(t, h.Verify("repeatable", h2))
}

func TestBcryptHasher_MalformedHashIsMismatch(t *testing.T) {
	h := NewBcryptHasher()

	assert.False(t, h.Verify("anything", ""))
	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", "$argon2id$v=19$m=65536,t=1,p=4$x$y"))
}
