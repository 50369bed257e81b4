package crypto

import (
	stdcrypto "crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/elliptic"
	"crypto/rand"
	"hash"
	"io"
	"sync"

	sha256 "github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/crypto/ripemd160" // registers RIPEMD160 with the hash registry
)

// provider bundles the primitives every operation in this package is built
// on. It is created once per process and never mutated afterwards.
type provider struct {
	sha256    func() hash.Hash
	ripemd160 func() hash.Hash
	newBlock  func(key []byte) (cipher.Block, error)
	curve     elliptic.Curve
	random    *randomSource
}

// randomSource serializes reads from the shared generator.
type randomSource struct {
	mu sync.Mutex
	r  io.Reader
}

func (s *randomSource) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return io.ReadFull(s.r, p)
}

var (
	providerOnce sync.Once
	defaultProv  *provider
	providerErr  error
)

func loadProvider() (*provider, error) {
	if !stdcrypto.RIPEMD160.Available() {
		return nil, errors.New("RIPEMD-160 is not registered")
	}
	curve := elliptic.P256()
	return &provider{
		sha256:    sha256.New,
		ripemd160: stdcrypto.RIPEMD160.New,
		newBlock:  aes.NewCipher,
		curve:     curve,
		random:    &randomSource{r: rand.Reader},
	}, nil
}

// Init prepares the process-wide provider. It is safe to call any number of
// times; only the first call does work. Every operation calls it implicitly.
func Init() error {
	providerOnce.Do(func() {
		defaultProv, providerErr = loadProvider()
		if providerErr != nil {
			log.Error().Err(providerErr).Msg("crypto provider initialization failed")
			providerErr = unavailable("init", providerErr)
		}
	})
	return providerErr
}

func getProvider() (*provider, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return defaultProv, nil
}

// mustProvider is used by operations whose only failure mode is a broken
// deployment.
func mustProvider() *provider {
	p, err := getProvider()
	if err != nil {
		panic(err)
	}
	return p
}
