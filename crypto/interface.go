package crypto

import (
	"github.com/cloudflare/circl/sign/schemes"
)

// Signer works on byte-encoded keys so callers can keep keys in their own
// storage format.
type Signer interface {
	Sign(data []byte, privateKey []byte) ([]byte, error)
	Verify(data []byte, signature []byte, publicKey []byte) (bool, error)
	GenerateKeys() (publicKey []byte, privateKey []byte, err error)
	AlgorithmName() string
}

var (
	_ Signer = ECDSAP256Signer{}
	_ Signer = Ed25519Signer{}
)

// SignerFor returns the Signer for sigType.
//
//nolint:ireturn
func SignerFor(sigType SignatureType) (Signer, error) {
	switch sigType {
	case ECDSAP256:
		return ECDSAP256Signer{}, nil
	case Ed25519:
		return Ed25519Signer{}, nil
	}
	return nil, invalidInput("signer", "unsupported signature type %d", sigType)
}

// ECDSAP256Signer uses 32-byte private scalars, 65-byte public points and
// raw64 signatures. Verify also accepts DER signatures.
type ECDSAP256Signer struct{}

func (ECDSAP256Signer) AlgorithmName() string { return ECDSAP256.String() }

func (ECDSAP256Signer) GenerateKeys() ([]byte, []byte, error) {
	keyPair, err := GenerateSignatureKeyPair(ECDSAP256)
	if err != nil {
		return nil, nil, err
	}
	return PublicKeyToBytes(keyPair.ECDSAPub), PrivateKeyToBytes(keyPair.ECDSAPriv), nil
}

func (ECDSAP256Signer) Sign(data, privateKey []byte) ([]byte, error) {
	priv, err := PrivateKeyFromBytes(privateKey)
	if err != nil {
		return nil, err
	}
	return Sign(priv, data)
}

func (ECDSAP256Signer) Verify(data, signature, publicKey []byte) (bool, error) {
	return VerifyBytes(publicKey, data, signature)
}

// Ed25519Signer uses the binary key encodings of circl's Ed25519 scheme.
type Ed25519Signer struct{}

func (Ed25519Signer) AlgorithmName() string { return Ed25519.String() }

func (Ed25519Signer) GenerateKeys() ([]byte, []byte, error) {
	keyPair, err := GenerateSignatureKeyPair(Ed25519)
	if err != nil {
		return nil, nil, err
	}
	pub, err := keyPair.Ed25519Pub.MarshalBinary()
	if err != nil {
		return nil, nil, unavailable("generate key", err)
	}
	priv, err := keyPair.Ed25519Priv.MarshalBinary()
	if err != nil {
		return nil, nil, unavailable("generate key", err)
	}
	return pub, priv, nil
}

func (Ed25519Signer) Sign(data, privateKey []byte) ([]byte, error) {
	priv, err := schemes.ByName(ed25519SchemeName).UnmarshalBinaryPrivateKey(privateKey)
	if err != nil {
		return nil, wrapInvalid("sign", err, "invalid Ed25519 private key")
	}
	return SignMessage(&SignatureKeyPair{Type: Ed25519, Ed25519Priv: priv}, data)
}

func (Ed25519Signer) Verify(data, signature, publicKey []byte) (bool, error) {
	pub, err := schemes.ByName(ed25519SchemeName).UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return false, wrapInvalid("verify", err, "invalid Ed25519 public key")
	}
	return VerifySignature(&SignatureKeyPair{Type: Ed25519, Ed25519Pub: pub}, data, signature)
}
