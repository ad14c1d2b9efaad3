package vector

import (
	"encoding/binary"
	"math"

	"github.com/minio/highwayhash"
)

const digestChunk = 4096

// highwayhash wants exactly 32 bytes of key. The digest only compares results within a run, so a fixed key is fine.
var digestKey = []byte("speedtest-vector-digest-key-0000")

// Digest returns a 64-bit hash of v, identical results share the same digest. Elements are hashed in chunks to keep
// memory flat on large vectors.
func Digest(v []float64) (uint64, error) {
	h, err := highwayhash.New64(digestKey)
	if err != nil {
		return 0, err
	}

	buf := make([]byte, 0, 8*digestChunk)
	for len(v) > 0 {
		n := len(v)
		if n > digestChunk {
			n = digestChunk
		}

		buf = buf[:0]
		for _, f := range v[:n] {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
		}

		_, _ = h.Write(buf)
		v = v[n:]
	}

	return h.Sum64(), nil
}
