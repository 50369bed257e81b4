package crypto

import (
	"crypto/aes"
	"crypto/cipher"
)

// AESEncryptAligned encrypts data with AES-CBC and no padding.
// data must be a positive multiple of the AES block size, key must be 16, 24
// or 32 bytes and iv must be one block long.
func AESEncryptAligned(data, key, iv []byte) ([]byte, error) {
	mode, err := newCBC("aes encrypt", data, key, iv, cipher.NewCBCEncrypter)
	if err != nil {
		return nil, err
	}

	ciphertext := make([]byte, len(data))
	mode.CryptBlocks(ciphertext, data)
	return ciphertext, nil
}

// AESDecryptAligned decrypts data with AES-CBC and no padding. The same
// length rules as AESEncryptAligned apply.
func AESDecryptAligned(data, key, iv []byte) ([]byte, error) {
	mode, err := newCBC("aes decrypt", data, key, iv, cipher.NewCBCDecrypter)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(data))
	mode.CryptBlocks(plaintext, data)
	return plaintext, nil
}

func newCBC(op string, data, key, iv []byte, mode func(cipher.Block, []byte) cipher.BlockMode) (cipher.BlockMode, error) {
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, invalidInput(op, "data length %d is not a positive multiple of %d", len(data), aes.BlockSize)
	}
	if len(iv) != aes.BlockSize {
		return nil, invalidInput(op, "iv length %d, expected %d", len(iv), aes.BlockSize)
	}

	p, err := getProvider()
	if err != nil {
		return nil, err
	}

	// Create a new AES cipher block
	block, err := p.newBlock(key)
	if err != nil {
		return nil, wrapInvalid(op, err, "failed to create AES cipher")
	}
	return mode(block, iv), nil
}
