package crypto

import (
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestInitIsIdempotent(t *testing.T) {
	require.NoError(t, Init())
	require.NoError(t, Init())
}

func TestHashVectors(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]byte) []byte
		in   string
		want string
	}{
		{"sha256 empty", Sha256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha256 abc", Sha256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"ripemd160 empty", Ripemd160, "", "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
		{"ripemd160 abc", Ripemd160, "abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hex.EncodeToString(tt.fn([]byte(tt.in))))
		})
	}
}

func TestDigestSizes(t *testing.T) {
	in := []byte("hello")
	assert.Len(t, Sha256(in), Sha256Size)
	assert.Len(t, DoubleSha256(in), Sha256Size)
	assert.Len(t, Ripemd160(in), Ripemd160Size)
}

func TestDoubleSha256(t *testing.T) {
	for _, in := range [][]byte{nil, []byte("a"), []byte("hello"), make([]byte, 1000)} {
		assert.Equal(t, Sha256(Sha256(in)), DoubleSha256(in))
	}
	assert.Equal(t, Sha256([]byte("x")), Sha256([]byte("x")))
}

func TestAESKnownVector(t *testing.T) {
	// NIST SP 800-38A F.2.1, first block
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := mustHex(t, "6bc1bee22e409f96e93d7e117393172a")
	want := mustHex(t, "7649abac8119b246cee98e9b12e9197d")

	ciphertext, err := AESEncryptAligned(plaintext, key, iv)
	require.NoError(t, err)
	assert.Equal(t, want, ciphertext)

	decrypted, err := AESDecryptAligned(ciphertext, key, iv)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestAESRoundTrip(t *testing.T) {
	iv := NextRandom16B()

	for _, keySize := range []int{16, 24, 32} {
		for _, blocks := range []int{1, 2, 7} {
			key, err := RandomBytes(keySize)
			require.NoError(t, err)
			data, err := RandomBytes(blocks * 16)
			require.NoError(t, err)

			ciphertext, err := AESEncryptAligned(data, key, iv)
			require.NoError(t, err)
			assert.Len(t, ciphertext, len(data))
			assert.NotEqual(t, data, ciphertext)

			decrypted, err := AESDecryptAligned(ciphertext, key, iv)
			require.NoError(t, err)
			assert.Equal(t, data, decrypted)
		}
	}
}

func TestAESRejectsBadInput(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, 16)

	tests := []struct {
		name string
		data []byte
		key  []byte
		iv   []byte
	}{
		{"empty data", nil, key, iv},
		{"unaligned data", make([]byte, 17), key, iv},
		{"short data", make([]byte, 15), key, iv},
		{"bad key size", make([]byte, 16), make([]byte, 20), iv},
		{"short iv", make([]byte, 16), key, make([]byte, 8)},
		{"long iv", make([]byte, 16), key, make([]byte, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := AESEncryptAligned(tt.data, tt.key, tt.iv)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, out)

			out, err = AESDecryptAligned(tt.data, tt.key, tt.iv)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, out)
		})
	}
}

func TestRandomBytes(t *testing.T) {
	assert.Len(t, NextRandom32B(), 32)
	assert.Len(t, NextRandom16B(), 16)
	assert.Len(t, NextRandom4B(), 4)

	empty, err := RandomBytes(0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = RandomBytes(-1)
	require.ErrorIs(t, err, ErrInvalidInput)

	largest, err := RandomBytes(MaxRandomBytes)
	require.NoError(t, err)
	assert.Len(t, largest, MaxRandomBytes)

	_, err = RandomBytes(MaxRandomBytes + 1)
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.NotEqual(t, NextRandom32B(), NextRandom32B())
}

func TestRandomBytesConcurrent(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	results := make([][]byte, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = RandomBytes(32)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, results[i], 32)
		seen[string(results[i])] = true
	}
	assert.Len(t, seen, workers)
}

func TestErrorKinds(t *testing.T) {
	_, err := AESEncryptAligned(make([]byte, 3), make([]byte, 16), make([]byte, 16))
	require.Error(t, err)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "aes encrypt", cerr.Op)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrProviderUnavailable)
	assert.Contains(t, err.Error(), "not a positive multiple of 16")
}
