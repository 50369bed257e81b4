package crypto

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/json"
	"math/big"

	"github.com/cloudflare/circl/sign/schemes"
	"github.com/pkg/errors"
)

const (
	// PublicKeySize is the length of an uncompressed P-256 point (04 || X || Y).
	PublicKeySize = 1 + 2*scalarSize
	// CompressedPublicKeySize is the length of a compressed P-256 point (02|03 || X).
	CompressedPublicKeySize = 1 + scalarSize
	// PrivateKeySize is the length of a P-256 private scalar.
	PrivateKeySize = scalarSize
)

// SerializedSignaturePublicKey represents a serialized public key for signature verification
type SerializedSignaturePublicKey struct {
	Type       SignatureType `json:"type"`
	ECDSAPub   []byte        `json:"ecdsa_pub,omitempty"`
	Ed25519Pub []byte        `json:"ed25519_pub,omitempty"`
}

// SerializeSignaturePublicKey serializes the public half of a key pair as JSON
func SerializeSignaturePublicKey(keyPair *SignatureKeyPair) ([]byte, error) {
	serialized := SerializedSignaturePublicKey{
		Type: keyPair.Type,
	}

	switch keyPair.Type {
	case ECDSAP256:
		if keyPair.ECDSAPub != nil {
			serialized.ECDSAPub = PublicKeyToBytes(keyPair.ECDSAPub)
		}
	case Ed25519:
		if keyPair.Ed25519Pub != nil {
			var err error
			serialized.Ed25519Pub, err = keyPair.Ed25519Pub.MarshalBinary()
			if err != nil {
				return nil, errors.Wrap(err, "failed to marshal Ed25519 public key")
			}
		}
	default:
		return nil, invalidInput("serialize public key", "unsupported signature type %d", keyPair.Type)
	}

	return json.Marshal(serialized)
}

// DeserializeSignaturePublicKey deserializes a signature public key from bytes
func DeserializeSignaturePublicKey(data []byte) (*SignatureKeyPair, error) {
	const op = "deserialize public key"

	var serialized SerializedSignaturePublicKey
	if err := json.Unmarshal(data, &serialized); err != nil {
		return nil, wrapInvalid(op, err, "failed to unmarshal public key")
	}

	keyPair := &SignatureKeyPair{
		Type: serialized.Type,
	}

	switch serialized.Type {
	case ECDSAP256:
		if len(serialized.ECDSAPub) > 0 {
			var err error
			keyPair.ECDSAPub, err = PublicKeyFromBytes(serialized.ECDSAPub)
			if err != nil {
				return nil, err
			}
		}
	case Ed25519:
		if len(serialized.Ed25519Pub) > 0 {
			var err error
			keyPair.Ed25519Pub, err = schemes.ByName(ed25519SchemeName).UnmarshalBinaryPublicKey(serialized.Ed25519Pub)
			if err != nil {
				return nil, wrapInvalid(op, err, "failed to deserialize Ed25519 public key")
			}
		}
	default:
		return nil, invalidInput(op, "unsupported signature type %d", serialized.Type)
	}

	return keyPair, nil
}

// PublicKeyToBytes encodes an ECDSA public key as an uncompressed point.
func PublicKeyToBytes(pub *ecdsa.PublicKey) []byte {
	if pub == nil {
		return nil
	}

	keySize := (pub.Curve.Params().BitSize + 7) / 8
	result := make([]byte, 1+2*keySize)

	// Uncompressed point format
	result[0] = 4

	pub.X.FillBytes(result[1 : 1+keySize])
	pub.Y.FillBytes(result[1+keySize:])

	return result
}

// PublicKeyFromBytes reconstructs a P-256 public key from its uncompressed
// (65 byte) or compressed (33 byte) point encoding. The point must lie on the
// curve.
func PublicKeyFromBytes(data []byte) (*ecdsa.PublicKey, error) {
	const op = "public key from bytes"

	p, err := getProvider()
	if err != nil {
		return nil, err
	}

	var x, y *big.Int
	switch {
	case len(data) == PublicKeySize && data[0] == 4:
		// ecdh rejects points that are not on the curve and the identity
		if _, err := ecdh.P256().NewPublicKey(data); err != nil {
			return nil, wrapInvalid(op, err, "invalid uncompressed point")
		}
		x = new(big.Int).SetBytes(data[1 : 1+scalarSize])
		y = new(big.Int).SetBytes(data[1+scalarSize:])
	case len(data) == CompressedPublicKeySize && (data[0] == 2 || data[0] == 3):
		x, y = elliptic.UnmarshalCompressed(p.curve, data)
		if x == nil {
			return nil, invalidInput(op, "invalid compressed point")
		}
	case len(data) == 0:
		return nil, invalidInput(op, "empty public key")
	default:
		return nil, invalidInput(op, "unsupported point encoding: %d bytes with prefix 0x%02x", len(data), data[0])
	}

	return &ecdsa.PublicKey{
		Curve: p.curve,
		X:     x,
		Y:     y,
	}, nil
}

// PrivateKeyFromBytes rebuilds a P-256 private key from its 32-byte scalar.
func PrivateKeyFromBytes(scalar []byte) (*ecdsa.PrivateKey, error) {
	const op = "private key from bytes"

	if len(scalar) != PrivateKeySize {
		return nil, invalidInput(op, "private key is %d bytes, expected %d", len(scalar), PrivateKeySize)
	}
	priv, err := ecdh.P256().NewPrivateKey(scalar)
	if err != nil {
		return nil, wrapInvalid(op, err, "invalid private scalar")
	}
	pub, err := PublicKeyFromBytes(priv.PublicKey().Bytes())
	if err != nil {
		return nil, err
	}
	return &ecdsa.PrivateKey{
		PublicKey: *pub,
		D:         new(big.Int).SetBytes(scalar),
	}, nil
}

// PrivateKeyToBytes returns the 32-byte big-endian scalar of priv.
func PrivateKeyToBytes(priv *ecdsa.PrivateKey) []byte {
	if priv == nil {
		return nil
	}
	out := make([]byte, PrivateKeySize)
	priv.D.FillBytes(out)
	return out
}
