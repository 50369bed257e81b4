package crypto

const (
	// Sha256Size is the length of a SHA-256 digest.
	Sha256Size = 32
	// Ripemd160Size is the length of a RIPEMD-160 digest.
	Ripemd160Size = 20
)

// Sha256 returns the SHA-256 digest of src.
func Sha256(src []byte) []byte {
	h := mustProvider().sha256()
	h.Write(src)
	return h.Sum(nil)
}

// DoubleSha256 returns Sha256(Sha256(src)).
func DoubleSha256(src []byte) []byte {
	return Sha256(Sha256(src))
}

// Ripemd160 returns the RIPEMD-160 digest of src.
func Ripemd160(src []byte) []byte {
	h := mustProvider().ripemd160()
	h.Write(src)
	return h.Sum(nil)
}
