package cryptox

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	ok, err := h.Verify("s3cret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltsDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_CorruptDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	ok, err := h.Verify("pw", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.ErrorIs(t, err, common.ErrCorruptCredential)
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func testArgon2() *Argon2Hasher {
	return NewArgon2Hasher(Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
}

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	h := testArgon2()

	salt, hash, err := h.Hash("1234")
	require.NoError(t, err)
	assert.Len(t, salt, 16)
	assert.Len(t, hash, 32)

	ok, err := h.Verify("1234", salt, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("4321", salt, hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2Hasher_FreshSaltPerHash(t *testing.T) {
	h := testArgon2()
	s1, h1, err := h.Hash("1234")
	require.NoError(t, err)
	s2, h2, err := h.Hash("1234")
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, h1, h2)
}

func TestArgon2Hasher_CorruptRecord(t *testing.T) {
	h := testArgon2()
	_, err := h.Verify("1234", nil, make([]byte, 32))
	assert.ErrorIs(t, err, common.ErrCorruptCredential)

	_, err = h.Verify("1234", make([]byte, 16), []byte{1, 2})
	assert.ErrorIs(t, err, common.ErrCorruptCredential)
}
