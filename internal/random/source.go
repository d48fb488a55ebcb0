package random

import (
	"bytes"
	cryptorand "crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// Returns math/rand generator seeded from crypto/rand.
func NewSource() (*mathrand.Rand, error) {
	randomKey := make([]byte, 8)

	_, err := cryptorand.Read(randomKey)

	if err != nil {
		return nil, err
	}

	var int64Source int64

	err = binary.Read(bytes.NewReader(randomKey), binary.BigEndian, &int64Source)

	if err != nil {
		return nil, err
	}

	return mathrand.New(mathrand.NewSource(int64Source)), nil
}

type Shuffler struct {
	randSource *mathrand.Rand
}

func NewShuffler(randSource *mathrand.Rand) *Shuffler {
	return &Shuffler{
		randSource: randSource,
	}
}

// Returns a shuffled copy; the argument isn't modified.
func (s *Shuffler) Strings(values []string) []string {
	res := make([]string, len(values))

	copy(res, values)

	s.randSource.Shuffle(
		len(res),
		func(i, j int) {
			res[i], res[j] = res[j], res[i]
		},
	)

	return res
}
