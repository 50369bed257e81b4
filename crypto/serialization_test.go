package crypto

import (
	"crypto/elliptic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicKeyBytesRoundTrip(t *testing.T) {
	keyPair := newKeyPair(t)

	encoded := PublicKeyToBytes(keyPair.ECDSAPub)
	require.Len(t, encoded, PublicKeySize)
	assert.Equal(t, byte(0x04), encoded[0])

	pub, err := PublicKeyFromBytes(encoded)
	require.NoError(t, err)
	assert.True(t, pub.Equal(keyPair.ECDSAPub))
}

func TestPublicKeyFromCompressedBytes(t *testing.T) {
	keyPair := newKeyPair(t)
	compressed := elliptic.MarshalCompressed(elliptic.P256(), keyPair.ECDSAPub.X, keyPair.ECDSAPub.Y)
	require.Len(t, compressed, CompressedPublicKeySize)

	pub, err := PublicKeyFromBytes(compressed)
	require.NoError(t, err)
	assert.True(t, pub.Equal(keyPair.ECDSAPub))

	sig, err := Sign(keyPair.ECDSAPriv, []byte("compressed"))
	require.NoError(t, err)
	ok, err := VerifyBytes(compressed, []byte("compressed"), sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPublicKeyFromBytesRejectsInvalidPoints(t *testing.T) {
	keyPair := newKeyPair(t)
	valid := PublicKeyToBytes(keyPair.ECDSAPub)

	offCurve := append([]byte(nil), valid...)
	offCurve[len(offCurve)-1] ^= 0x01

	wrongPrefix := append([]byte(nil), valid...)
	wrongPrefix[0] = 0x05

	badCompressed := make([]byte, CompressedPublicKeySize)
	badCompressed[0] = 0x02
	for i := 1; i < len(badCompressed); i++ {
		badCompressed[i] = 0xff
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", valid[:40]},
		{"off curve", offCurve},
		{"wrong prefix", wrongPrefix},
		{"compressed x out of field", badCompressed},
		{"identity", append([]byte{0x04}, make([]byte, 64)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PublicKeyFromBytes(tt.data)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestPrivateKeyBytesRoundTrip(t *testing.T) {
	keyPair := newKeyPair(t)

	scalar := PrivateKeyToBytes(keyPair.ECDSAPriv)
	require.Len(t, scalar, PrivateKeySize)

	priv, err := PrivateKeyFromBytes(scalar)
	require.NoError(t, err)
	assert.True(t, priv.Equal(keyPair.ECDSAPriv))
	assert.True(t, priv.PublicKey.Equal(keyPair.ECDSAPub))

	_, err = PrivateKeyFromBytes(make([]byte, PrivateKeySize))
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = PrivateKeyFromBytes(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSerializeSignaturePublicKey(t *testing.T) {
	for _, sigType := range []SignatureType{ECDSAP256, Ed25519} {
		t.Run(sigType.String(), func(t *testing.T) {
			keyPair, err := GenerateSignatureKeyPair(sigType)
			require.NoError(t, err)

			data, err := SerializeSignaturePublicKey(keyPair)
			require.NoError(t, err)

			restored, err := DeserializeSignaturePublicKey(data)
			require.NoError(t, err)
			assert.Equal(t, sigType, restored.Type)

			message := []byte("serialized key")
			sig, err := SignMessage(keyPair, message)
			require.NoError(t, err)

			ok, err := VerifySignature(restored, message, sig)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}

	_, err := DeserializeSignaturePublicKey([]byte("{"))
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = DeserializeSignaturePublicKey([]byte(`{"type":0,"ecdsa_pub":"AQID"}`))
	require.ErrorIs(t, err, ErrInvalidInput)
}
