package world

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// SubSeed derives a stable 64-bit seed for a named RNG stream from the run's
// string seed. Each actor gets its own stream, so adding or removing one
// actor does not reshuffle everyone else's rolls.
func SubSeed(seed, stream string, n int32) int64 {
	sum := blake2b.Sum256([]byte(fmt.Sprintf("%s|%s|%d", seed, stream, n)))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
