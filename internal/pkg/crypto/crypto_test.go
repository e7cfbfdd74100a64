package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	svc := New("test-encryption-passphrase")

	plaintext := "s3cret-client-password"
	ciphertext, err := svc.EncryptString(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := svc.DecryptString(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncryptProducesDistinctCiphertexts(t *testing.T) {
	svc := New("test-encryption-passphrase")

	// Random nonce per call: identical plaintexts must not repeat.
	a, err := svc.EncryptString("same input")
	require.NoError(t, err)
	b, err := svc.EncryptString("same input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDecryptWithWrongKey(t *testing.T) {
	ciphertext, err := New("key-one").EncryptString("hello")
	require.NoError(t, err)

	_, err = New("key-two").DecryptString(ciphertext)
	assert.Error(t, err)
}

func TestDecryptGarbage(t *testing.T) {
	svc := New("test-encryption-passphrase")

	_, err := svc.DecryptString("not-base64!!!")
	assert.Error(t, err)

	_, err = svc.DecryptString("YWJj") // valid base64, too short for a nonce
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}
