package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(DefaultBcryptCost)

	hash, err := hasher.Hash("gaby1234")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "gaby1234", hash)

	assert.True(t, hasher.Verify("gaby1234", hash))
	assert.False(t, hasher.Verify("wrong-password", hash))
	assert.False(t, hasher.Verify("gaby1234", "not-a-bcrypt-hash"))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewPasswordHasher(DefaultBcryptCost)

	first, err := hasher.Hash("gaby1234")
	assert.NoError(t, err)
	second, err := hasher.Hash("gaby1234")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("gaby1234", first))
	assert.True(t, hasher.Verify("gaby1234", second))
}

func TestNewPasswordHasher_ClampsInvalidCost(t *testing.T) {
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("gaby1234")
	assert.NoError(t, err)
	assert.True(t, hasher.Verify("gaby1234", hash))
}
