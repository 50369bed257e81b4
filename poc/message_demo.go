package poc

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"silvertiger.com/go/nkncrypto/crypto"
	"silvertiger.com/go/nkncrypto/user"
)

// RunSignatureDemo signs "hello" with a fresh P-256 identity, checks the
// raw signature size, verifies it against the signer's public point and
// makes sure an unrelated identity rejects it.
func RunSignatureDemo(logger zerolog.Logger) error {
	alice, err := user.NewUser("Alice", crypto.ECDSAP256)
	if err != nil {
		return errors.Wrap(err, "failed to create Alice")
	}
	mallory, err := user.NewUser("Mallory", crypto.ECDSAP256)
	if err != nil {
		return errors.Wrap(err, "failed to create Mallory")
	}

	message := []byte("hello")
	signature, err := alice.Sign(message)
	if err != nil {
		return err
	}
	if len(signature) != crypto.RawSignatureSize {
		return errors.Errorf("signature is %d bytes, expected %d", len(signature), crypto.RawSignatureSize)
	}
	logger.Info().Hex("signature", signature).Msg("signed message")

	alicePub, err := alice.PublicKeyBytes()
	if err != nil {
		return err
	}
	valid, err := crypto.VerifyBytes(alicePub, message, signature)
	if err != nil {
		return errors.Wrap(err, "verification against signer failed")
	}
	if !valid {
		return errors.New("signature rejected by its own public key")
	}
	logger.Info().Hex("public_key", alicePub).Msg("signature verified")

	malloryPub, err := mallory.PublicKeyBytes()
	if err != nil {
		return err
	}
	valid, err = crypto.VerifyBytes(malloryPub, message, signature)
	if err != nil {
		return errors.Wrap(err, "verification against other key failed")
	}
	if valid {
		return errors.New("signature accepted by an unrelated public key")
	}
	logger.Info().Msg("signature correctly rejected for unrelated key")

	return nil
}

// RunSecureMessageDemo seals a block aligned message from Alice to Bob and
// has Bob open it and check Alice's signature.
func RunSecureMessageDemo(logger zerolog.Logger, sigType crypto.SignatureType) error {
	alice, err := user.NewUser("Alice", sigType)
	if err != nil {
		return errors.Wrap(err, "failed to create Alice")
	}
	bob, err := user.NewUser("Bob", sigType)
	if err != nil {
		return errors.Wrap(err, "failed to create Bob")
	}

	params, err := user.NewSessionParams()
	if err != nil {
		return err
	}

	// 48 bytes, three AES blocks
	message := []byte("Hello Bob, this is a secret message from Alice!!")
	ciphertext, signature, err := alice.SealAndSign(params, message)
	if err != nil {
		return errors.Wrap(err, "sealing failed")
	}
	logger.Debug().
		Str("scheme", sigType.String()).
		Int("ciphertext_len", len(ciphertext)).
		Int("signature_len", len(signature)).
		Msg("message sealed")

	plaintext, err := bob.OpenAndVerify(alice, params, ciphertext, signature)
	if err != nil {
		return errors.Wrap(err, "opening failed")
	}
	if !bytes.Equal(plaintext, message) {
		return errors.New("decrypted message does not match the original")
	}
	logger.Info().Str("scheme", sigType.String()).Msg("message transmitted and verified")

	return nil
}

// RunCryptographyDemo runs every demo in order and stops at the first failure.
func RunCryptographyDemo(logger zerolog.Logger) error {
	if err := RunSignatureDemo(logger); err != nil {
		return errors.Wrap(err, "signature demo")
	}
	for _, sigType := range []crypto.SignatureType{crypto.ECDSAP256, crypto.Ed25519} {
		if err := RunSecureMessageDemo(logger, sigType); err != nil {
			return errors.Wrapf(err, "secure message demo (%s)", sigType)
		}
	}
	return nil
}
