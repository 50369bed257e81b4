package crypto

import (
	"math/big"
)

// Signature codec for the two shapes an ECDSA P-256 signature travels in:
//
//	DER:   30 len 02 rlen r... 02 slen s...
//	raw64: r (32 bytes, big-endian) || s (32 bytes, big-endian)
//
// Only this fixed two-INTEGER shape is handled. Every offset is bounds
// checked before it is read.

const (
	// RawSignatureSize is the length of a raw r||s signature.
	RawSignatureSize = 64

	scalarSize = 32

	tagSequence = 0x30
	tagInteger  = 0x02

	// 30 06 02 01 r 02 01 s
	minDERSize = 8
	// 30 46 02 21 00 r(32) 02 21 00 s(32)
	maxDERSize = 2 + 2*(2+scalarSize+1)
)

// DERToRaw converts a DER encoded signature to its raw64 form. Sign padding
// is dropped and both integers are left-padded with zeros to 32 bytes.
func DERToRaw(der []byte) ([]byte, error) {
	r, s, err := parseDER(der)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, RawSignatureSize)
	copy(raw[scalarSize-len(r):scalarSize], r)
	copy(raw[RawSignatureSize-len(s):], s)
	return raw, nil
}

// RawToDER converts a raw64 signature to DER. Each integer is encoded in
// minimal form: leading zero bytes are removed and a single 0x00 is
// prepended when the most significant bit is set.
func RawToDER(raw []byte) ([]byte, error) {
	if len(raw) != RawSignatureSize {
		return nil, invalidInput("raw to der", "raw signature is %d bytes, expected %d", len(raw), RawSignatureSize)
	}

	r := minimalInteger(raw[:scalarSize])
	s := minimalInteger(raw[scalarSize:])

	der := make([]byte, 0, 2+2+len(r)+2+len(s))
	der = append(der, tagSequence, byte(2+len(r)+2+len(s)))
	der = append(der, tagInteger, byte(len(r)))
	der = append(der, r...)
	der = append(der, tagInteger, byte(len(s)))
	der = append(der, s...)
	return der, nil
}

// EncodeRaw serializes (r, s) as raw64. Both values must be in [0, 2^256).
func EncodeRaw(r, s *big.Int) ([]byte, error) {
	if !fitsScalar(r) || !fitsScalar(s) {
		return nil, invalidInput("encode raw", "r and s must be non-negative and at most %d bits", 8*scalarSize)
	}
	raw := make([]byte, RawSignatureSize)
	r.FillBytes(raw[:scalarSize])
	s.FillBytes(raw[scalarSize:])
	return raw, nil
}

// DecodeRaw splits a raw64 signature into its two integers.
func DecodeRaw(raw []byte) (r, s *big.Int, err error) {
	if len(raw) != RawSignatureSize {
		return nil, nil, invalidInput("decode raw", "raw signature is %d bytes, expected %d", len(raw), RawSignatureSize)
	}
	r = new(big.Int).SetBytes(raw[:scalarSize])
	s = new(big.Int).SetBytes(raw[scalarSize:])
	return r, s, nil
}

// EncodeDER serializes (r, s) as DER. Both values must be in [0, 2^256).
func EncodeDER(r, s *big.Int) ([]byte, error) {
	raw, err := EncodeRaw(r, s)
	if err != nil {
		return nil, err
	}
	return RawToDER(raw)
}

// ValidateDER reports whether der has the exact two-INTEGER signature shape
// with integers that fit in 32 bytes.
func ValidateDER(der []byte) error {
	_, _, err := parseDER(der)
	return err
}

// parseDER returns r and s with sign padding removed.
func parseDER(der []byte) (r, s []byte, err error) {
	const op = "parse der"

	if len(der) < minDERSize || len(der) > maxDERSize {
		return nil, nil, invalidInput(op, "signature is %d bytes, expected %d..%d", len(der), minDERSize, maxDERSize)
	}
	if der[0] != tagSequence {
		return nil, nil, invalidInput(op, "expected SEQUENCE tag, got 0x%02x", der[0])
	}
	if der[1]&0x80 != 0 || int(der[1]) != len(der)-2 {
		return nil, nil, invalidInput(op, "sequence length 0x%02x does not match %d content bytes", der[1], len(der)-2)
	}

	r, next, err := readInteger(der, 2)
	if err != nil {
		return nil, nil, err
	}
	s, next, err = readInteger(der, next)
	if err != nil {
		return nil, nil, err
	}
	if next != len(der) {
		return nil, nil, invalidInput(op, "%d trailing bytes after s", len(der)-next)
	}
	return r, s, nil
}

// readInteger reads an INTEGER starting at off and returns its unsigned
// magnitude together with the offset just past it.
func readInteger(der []byte, off int) ([]byte, int, error) {
	const op = "parse der"

	if off+2 > len(der) {
		return nil, 0, invalidInput(op, "truncated integer header at offset %d", off)
	}
	if der[off] != tagInteger {
		return nil, 0, invalidInput(op, "expected INTEGER tag at offset %d, got 0x%02x", off, der[off])
	}
	n := int(der[off+1])
	if n == 0 || n&0x80 != 0 {
		return nil, 0, invalidInput(op, "invalid integer length 0x%02x at offset %d", der[off+1], off+1)
	}

	start := off + 2
	end := start + n
	if end > len(der) {
		return nil, 0, invalidInput(op, "integer at offset %d needs %d bytes, %d left", off, n, len(der)-start)
	}

	v := der[start:end]
	if v[0]&0x80 != 0 {
		return nil, 0, invalidInput(op, "negative integer at offset %d", off)
	}
	if len(v) > 1 && v[0] == 0 {
		if v[1]&0x80 == 0 {
			return nil, 0, invalidInput(op, "non-minimal integer at offset %d", off)
		}
		v = v[1:]
	}
	if len(v) > scalarSize {
		return nil, 0, invalidInput(op, "integer at offset %d is %d bytes, max %d", off, len(v), scalarSize)
	}
	return v, end, nil
}

func minimalInteger(b []byte) []byte {
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}
	b = b[i:]
	if b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return append([]byte(nil), b...)
}

func fitsScalar(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.BitLen() <= 8*scalarSize
}
