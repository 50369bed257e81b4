package user

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silvertiger.com/go/nkncrypto/crypto"
)

func TestSealAndOpen(t *testing.T) {
	for _, sigType := range []crypto.SignatureType{crypto.ECDSAP256, crypto.Ed25519} {
		t.Run(sigType.String(), func(t *testing.T) {
			alice, err := NewUser("Alice", sigType)
			require.NoError(t, err)
			bob, err := NewUser("Bob", sigType)
			require.NoError(t, err)

			params, err := NewSessionParams()
			require.NoError(t, err)
			require.Len(t, params.Key, SessionKeySize)
			require.Len(t, params.IV, 16)

			message := bytes.Repeat([]byte("0123456789abcdef"), 3)
			ciphertext, signature, err := alice.SealAndSign(params, message)
			require.NoError(t, err)
			assert.NotEqual(t, message, ciphertext)

			plaintext, err := bob.OpenAndVerify(alice, params, ciphertext, signature)
			require.NoError(t, err)
			assert.Equal(t, message, plaintext)

			// Bob did not sign it
			_, err = alice.OpenAndVerify(bob, params, ciphertext, signature)
			require.Error(t, err)
		})
	}
}

func TestSealRejectsUnalignedMessage(t *testing.T) {
	alice, err := NewUser("Alice", crypto.ECDSAP256)
	require.NoError(t, err)
	params, err := NewSessionParams()
	require.NoError(t, err)

	_, _, err = alice.SealAndSign(params, []byte("not aligned"))
	require.ErrorIs(t, err, crypto.ErrInvalidInput)
}

func TestVerifyFrom(t *testing.T) {
	alice, err := NewUser("Alice", crypto.ECDSAP256)
	require.NoError(t, err)
	bob, err := NewUser("Bob", crypto.ECDSAP256)
	require.NoError(t, err)

	message := []byte("hello")
	signature, err := alice.Sign(message)
	require.NoError(t, err)
	require.Len(t, signature, crypto.RawSignatureSize)

	alicePub, err := alice.PublicKeyBytes()
	require.NoError(t, err)
	ok, err := bob.VerifyFrom(alicePub, message, signature)
	require.NoError(t, err)
	assert.True(t, ok)

	bobPub, err := bob.PublicKeyBytes()
	require.NoError(t, err)
	ok, err = alice.VerifyFrom(bobPub, message, signature)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIncompleteUsersReturnErrors(t *testing.T) {
	alice, err := NewUser("Alice", crypto.ECDSAP256)
	require.NoError(t, err)
	params, err := NewSessionParams()
	require.NoError(t, err)

	_, err = (&User{Name: "empty"}).PublicKeyBytes()
	require.Error(t, err)

	noEd := &User{Name: "ed", SignatureKeyPair: &crypto.SignatureKeyPair{Type: crypto.Ed25519}}
	_, err = noEd.PublicKeyBytes()
	require.Error(t, err)

	_, err = (&User{Name: "empty"}).VerifyFrom(nil, nil, nil)
	require.Error(t, err)

	_, err = (&User{Name: "empty"}).Sign([]byte("x"))
	require.ErrorIs(t, err, crypto.ErrInvalidInput)

	message := make([]byte, 16)
	ciphertext, signature, err := alice.SealAndSign(params, message)
	require.NoError(t, err)

	_, err = alice.OpenAndVerify(nil, params, ciphertext, signature)
	require.Error(t, err)
	_, err = alice.OpenAndVerify(&User{Name: "empty"}, params, ciphertext, signature)
	require.Error(t, err)
	_, err = alice.OpenAndVerify(alice, nil, ciphertext, signature)
	require.Error(t, err)
	_, _, err = alice.SealAndSign(nil, message)
	require.Error(t, err)
}

func TestFromPrivateKey(t *testing.T) {
	alice, err := NewUser("Alice", crypto.ECDSAP256)
	require.NoError(t, err)

	restored, err := FromPrivateKey("Alice again", crypto.PrivateKeyToBytes(alice.SignatureKeyPair.ECDSAPriv))
	require.NoError(t, err)

	signature, err := restored.Sign([]byte("same key"))
	require.NoError(t, err)

	pub, err := alice.PublicKeyBytes()
	require.NoError(t, err)
	ok, err := alice.VerifyFrom(pub, []byte("same key"), signature)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = FromPrivateKey("broken", []byte{1})
	require.ErrorIs(t, err, crypto.ErrInvalidInput)
}
