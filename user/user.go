package user

import (
	"github.com/pkg/errors"

	"silvertiger.com/go/nkncrypto/crypto"
)

// SessionKeySize is the AES-256 key length used by NewSessionParams.
const SessionKeySize = 32

// User represents a participant holding an ECDSA P-256 or Ed25519 signing identity
type User struct {
	Name             string
	SignatureKeyPair *crypto.SignatureKeyPair
}

// SessionParams is the AES key and IV two users share for sealing blocks.
type SessionParams struct {
	Key []byte
	IV  []byte
}

// NewUser creates a new user with a freshly generated key pair of sigType
func NewUser(name string, sigType crypto.SignatureType) (*User, error) {
	sigKeyPair, err := crypto.GenerateSignatureKeyPair(sigType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate signature key pair")
	}

	return &User{
		Name:             name,
		SignatureKeyPair: sigKeyPair,
	}, nil
}

// FromPrivateKey restores an ECDSA P-256 user from its 32-byte scalar
func FromPrivateKey(name string, scalar []byte) (*User, error) {
	priv, err := crypto.PrivateKeyFromBytes(scalar)
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore private key")
	}

	return &User{
		Name: name,
		SignatureKeyPair: &crypto.SignatureKeyPair{
			Type:      crypto.ECDSAP256,
			ECDSAPriv: priv,
			ECDSAPub:  &priv.PublicKey,
		},
	}, nil
}

// PublicKeyBytes returns the wire encoding of the user's public key
func (u *User) PublicKeyBytes() ([]byte, error) {
	if u.SignatureKeyPair == nil {
		return nil, errors.Errorf("%s: no signature key pair", u.Name)
	}
	switch u.SignatureKeyPair.Type {
	case crypto.ECDSAP256:
		if u.SignatureKeyPair.ECDSAPub == nil {
			return nil, errors.Errorf("%s: missing ECDSA public key", u.Name)
		}
		return crypto.PublicKeyToBytes(u.SignatureKeyPair.ECDSAPub), nil
	case crypto.Ed25519:
		if u.SignatureKeyPair.Ed25519Pub == nil {
			return nil, errors.Errorf("%s: missing Ed25519 public key", u.Name)
		}
		return u.SignatureKeyPair.Ed25519Pub.MarshalBinary()
	}
	return nil, errors.Errorf("unsupported signature type %s", u.SignatureKeyPair.Type)
}

// Sign signs message with the user's private key
func (u *User) Sign(message []byte) ([]byte, error) {
	signature, err := crypto.SignMessage(u.SignatureKeyPair, message)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: signing failed", u.Name)
	}
	return signature, nil
}

// VerifyFrom checks a signature made by the owner of publicKey. The key
// encoding must match the user's own signature type.
func (u *User) VerifyFrom(publicKey, message, signature []byte) (bool, error) {
	if u.SignatureKeyPair == nil {
		return false, errors.Errorf("%s: no signature key pair", u.Name)
	}
	signer, err := crypto.SignerFor(u.SignatureKeyPair.Type)
	if err != nil {
		return false, err
	}
	return signer.Verify(message, signature, publicKey)
}

// NewSessionParams draws a fresh AES-256 key and IV
func NewSessionParams() (*SessionParams, error) {
	key, err := crypto.RandomBytes(SessionKeySize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session key")
	}
	return &SessionParams{Key: key, IV: crypto.NextRandom16B()}, nil
}

// SealAndSign encrypts a block aligned message and signs the plaintext
func (u *User) SealAndSign(params *SessionParams, message []byte) ([]byte, []byte, error) {
	if params == nil {
		return nil, nil, errors.New("missing session params")
	}
	ciphertext, err := crypto.AESEncryptAligned(message, params.Key, params.IV)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encryption failed")
	}

	signature, err := u.Sign(message)
	if err != nil {
		return nil, nil, err
	}

	return ciphertext, signature, nil
}

// OpenAndVerify decrypts a sealed block and verifies the sender's signature
func (u *User) OpenAndVerify(sender *User, params *SessionParams, ciphertext, signature []byte) ([]byte, error) {
	if sender == nil || sender.SignatureKeyPair == nil {
		return nil, errors.New("sender has no signature key pair")
	}
	if params == nil {
		return nil, errors.New("missing session params")
	}
	plaintext, err := crypto.AESDecryptAligned(ciphertext, params.Key, params.IV)
	if err != nil {
		return nil, errors.Wrap(err, "decryption failed")
	}

	valid, err := crypto.VerifySignature(sender.SignatureKeyPair, plaintext, signature)
	if err != nil {
		return nil, errors.Wrap(err, "signature verification error")
	}
	if !valid {
		return nil, errors.New("invalid signature")
	}

	return plaintext, nil
}
