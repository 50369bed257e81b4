package crypto

// MaxRandomBytes is the largest n RandomBytes accepts.
const MaxRandomBytes = 1 << 20

// RandomBytes returns n bytes from the process-wide secure generator.
// It is safe for concurrent use.
func RandomBytes(n int) ([]byte, error) {
	if n < 0 || n > MaxRandomBytes {
		return nil, invalidInput("random", "length %d outside 0..%d", n, MaxRandomBytes)
	}
	p, err := getProvider()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if _, err := p.random.Read(buf); err != nil {
		return nil, unavailable("random", err)
	}
	return buf, nil
}

func mustRandom(n int) []byte {
	b, err := RandomBytes(n)
	if err != nil {
		panic(err)
	}
	return b
}

// NextRandom32B returns 32 random bytes. It panics if the generator fails.
func NextRandom32B() []byte { return mustRandom(32) }

// NextRandom16B returns 16 random bytes. It panics if the generator fails.
func NextRandom16B() []byte { return mustRandom(16) }

// NextRandom4B returns 4 random bytes. It panics if the generator fails.
func NextRandom4B() []byte { return mustRandom(4) }
