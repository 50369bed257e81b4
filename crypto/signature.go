package crypto

import (
	"crypto/ecdsa"

	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/schemes"
)

// SignatureType represents the type of digital signature algorithm
type SignatureType int

const (
	// ECDSAP256 is ECDSA over P-256 with SHA-256 and raw64 signatures.
	ECDSAP256 SignatureType = iota
	// Ed25519 signatures.
	Ed25519
)

const ed25519SchemeName = "Ed25519"

func (t SignatureType) String() string {
	switch t {
	case ECDSAP256:
		return "ecdsa-p256"
	case Ed25519:
		return "ed25519"
	default:
		return "unknown"
	}
}

// SignatureKeyPair represents a key pair for digital signatures
type SignatureKeyPair struct {
	Type        SignatureType
	ECDSAPriv   *ecdsa.PrivateKey
	ECDSAPub    *ecdsa.PublicKey
	Ed25519Priv sign.PrivateKey
	Ed25519Pub  sign.PublicKey
}

// GenerateSignatureKeyPair generates a new key pair for the specified signature type
func GenerateSignatureKeyPair(sigType SignatureType) (*SignatureKeyPair, error) {
	p, err := getProvider()
	if err != nil {
		return nil, err
	}

	keyPair := &SignatureKeyPair{
		Type: sigType,
	}

	switch sigType {
	case ECDSAP256:
		priv, err := ecdsa.GenerateKey(p.curve, p.random)
		if err != nil {
			return nil, unavailable("generate key", err)
		}
		keyPair.ECDSAPriv = priv
		keyPair.ECDSAPub = &priv.PublicKey
	case Ed25519:
		pub, priv, err := schemes.ByName(ed25519SchemeName).GenerateKey()
		if err != nil {
			return nil, unavailable("generate key", err)
		}
		keyPair.Ed25519Pub = pub
		keyPair.Ed25519Priv = priv
	default:
		return nil, invalidInput("generate key", "unsupported signature type %d", sigType)
	}

	return keyPair, nil
}

// Sign hashes message with SHA-256, signs it with priv and returns the
// signature in raw64 form.
func Sign(priv *ecdsa.PrivateKey, message []byte) ([]byte, error) {
	const op = "sign"

	p, err := getProvider()
	if err != nil {
		return nil, err
	}
	if priv == nil || priv.D == nil || !isP256(&priv.PublicKey) {
		return nil, invalidInput(op, "private key is not a P-256 key")
	}

	digest := Sha256(message)
	der, err := ecdsa.SignASN1(p.random, priv, digest)
	if err != nil {
		return nil, wrapInvalid(op, err, "ECDSA signing failed")
	}
	return DERToRaw(der)
}

// Verify checks signature over message against pub. A 64-byte signature is
// read as raw64, anything else as DER. A well-formed signature that does not
// match returns false; a malformed signature or key returns an error.
func Verify(pub *ecdsa.PublicKey, message, signature []byte) (bool, error) {
	const op = "verify"

	if _, err := getProvider(); err != nil {
		return false, err
	}
	if !isP256(pub) {
		return false, invalidInput(op, "public key is not a P-256 key")
	}

	der := signature
	if len(signature) == RawSignatureSize {
		var err error
		if der, err = RawToDER(signature); err != nil {
			return false, err
		}
	} else if err := ValidateDER(signature); err != nil {
		return false, err
	}

	digest := Sha256(message)
	return ecdsa.VerifyASN1(pub, digest, der), nil
}

// VerifyBytes is Verify with the public key given as a point encoding
// accepted by PublicKeyFromBytes.
func VerifyBytes(publicKey, message, signature []byte) (bool, error) {
	pub, err := PublicKeyFromBytes(publicKey)
	if err != nil {
		return false, err
	}
	return Verify(pub, message, signature)
}

// SignMessage signs a message using the private key of keyPair
func SignMessage(keyPair *SignatureKeyPair, message []byte) ([]byte, error) {
	if keyPair == nil {
		return nil, invalidInput("sign", "missing key pair")
	}
	switch keyPair.Type {
	case ECDSAP256:
		return Sign(keyPair.ECDSAPriv, message)
	case Ed25519:
		if keyPair.Ed25519Priv == nil {
			return nil, invalidInput("sign", "missing Ed25519 private key")
		}
		return schemes.ByName(ed25519SchemeName).Sign(keyPair.Ed25519Priv, message, nil), nil
	}

	return nil, invalidInput("sign", "unsupported signature type %d", keyPair.Type)
}

// VerifySignature verifies a signature using the public key of keyPair
func VerifySignature(keyPair *SignatureKeyPair, message, signature []byte) (bool, error) {
	if keyPair == nil {
		return false, invalidInput("verify", "missing key pair")
	}
	switch keyPair.Type {
	case ECDSAP256:
		return Verify(keyPair.ECDSAPub, message, signature)
	case Ed25519:
		if keyPair.Ed25519Pub == nil {
			return false, invalidInput("verify", "missing Ed25519 public key")
		}
		scheme := schemes.ByName(ed25519SchemeName)
		if len(signature) != scheme.SignatureSize() {
			return false, invalidInput("verify", "Ed25519 signature is %d bytes, expected %d", len(signature), scheme.SignatureSize())
		}
		return scheme.Verify(keyPair.Ed25519Pub, message, signature, nil), nil
	}

	return false, invalidInput("verify", "unsupported signature type %d", keyPair.Type)
}

func isP256(pub *ecdsa.PublicKey) bool {
	return pub != nil && pub.Curve != nil && pub.X != nil && pub.Y != nil &&
		pub.Curve.Params().Name == "P-256"
}
