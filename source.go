package obfint

import (
	"sync"
	"sync/atomic"

	"github.com/NebulousLabs/fastrand"
	"golang.org/x/crypto/chacha20"
)

// Source fills p with mask bytes. Implementations must be safe for concurrent use.
type Source interface {
	Fill(p []byte)
}

type fastSource struct{}

// Fill draws from fastrand, which is safe for concurrent use and never fails.
func (fastSource) Fill(p []byte) { fastrand.Read(p) }

type sourceRef struct{ s Source }

// source is nil until SetSource is called; package-level values may be
// built before any init function runs.
var source atomic.Pointer[sourceRef]

// DefaultSource returns the Source currently used for new masks.
func DefaultSource() Source {
	return currentSource()
}

// SetSource replaces the process-wide Source. Call once at startup;
// passing nil restores the fastrand-backed default.
func SetSource(s Source) {
	if s == nil {
		s = fastSource{}
	}
	source.Store(&sourceRef{s: s})
}

func currentSource() Source {
	if ref := source.Load(); ref != nil {
		return ref.s
	}
	return fastSource{}
}

// SeededSource is a deterministic Source backed by a ChaCha20 key stream.
// It exists for tests and reproducible runs; masks it produces are only as
// secret as the seed.
//
// The stream always starts from a zero nonce and has a 32-bit block counter,
// so one SeededSource yields at most 256 GiB, about 2^35 masks. Fill panics
// once the stream is exhausted; create a new SeededSource with another seed
// before that point.
type SeededSource struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
}

// NewSeededSource returns a Source whose output is fully determined by seed.
func NewSeededSource(seed [32]byte) *SeededSource {
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// key and nonce sizes are fixed above
		panic("obfint: " + err.Error())
	}
	return &SeededSource{stream: stream}
}

// Fill writes the next len(p) key stream bytes into p.
func (s *SeededSource) Fill(p []byte) {
	clear(p)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stream.XORKeyStream(p, p)
}
