package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// SecureRandomFloat returns a float64 in [0.0, 1.0) read from crypto/rand.
// Falls back to RandomFloat if the system source fails.
func SecureRandomFloat() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return RandomFloat()
	}
	// 53 significant bits, same construction as math/rand
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// SeededSource returns a deterministic [0,1) source for replays and cmd/audit -seed runs
func SeededSource(seed int64) func() float64 {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducible audit runs
	return r.Float64
}
