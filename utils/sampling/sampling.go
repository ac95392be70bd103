// Package sampling implements secure sampling of bytes and integers.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

// RandomnessError is returned when the randomness source fails, for example
// when the entropy source is exhausted. It is never retried.
type RandomnessError struct {
	Err error
}

func (e *RandomnessError) Error() string {
	return fmt.Sprintf("failed to read from randomness source: %v", e.Err)
}

func (e *RandomnessError) Unwrap() error {
	return e.Err
}

// ReadUint64 reads exactly 8 bytes from prng and returns them as a big-endian uint64.
// Short reads and read errors are reported as a [*RandomnessError].
func ReadUint64(prng PRNG) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(prng, b[:]); err != nil {
		return 0, &RandomnessError{Err: err}
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// RandUniform samples a uniform integer in [0, v-1] by drawing values in [0, mask]
// until one falls below v. v must be non-zero and mask must be of the form 2^k-1 with mask >= v-1.
// It only returns once a value is accepted or prng fails, see [PRNG].
func RandUniform(prng PRNG, v, mask uint64) (randomInt uint64, err error) {
	for {
		if randomInt, err = ReadUint64(prng); err != nil {
			return 0, err
		}
		randomInt &= mask
		if randomInt < v {
			return randomInt, nil
		}
	}
}
