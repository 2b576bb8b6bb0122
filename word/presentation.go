// Package word: finitely presented groups and their content hash.
package word

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Presentation is a finitely presented group ⟨x1..xg | relators⟩.
// It is a value type; the simplification engine treats two presentations
// with equal Hash as the same group.
type Presentation struct {
	// Generators is the generator count g.
	Generators int

	// Relators are words equal to the identity in the group.
	Relators []Word
}

// Validate checks every relator references only generators 1..g.
func (p Presentation) Validate() error {
	for _, r := range p.Relators {
		if r.MaxGenerator() > p.Generators {
			return fmt.Errorf("%w: relator %s in %d-generator presentation",
				ErrBadGenerator, r, p.Generators)
		}
	}

	return nil
}

// Hash returns a stable content hash of the generator and relator lists.
// The hash is order-sensitive in the relator list, matching structural
// identity of the presentation. Collisions between structurally distinct
// presentations are an accepted approximation risk; they are not detected.
func (p Presentation) Hash() uint64 {
	d := xxhash.New()

	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = d.Write(buf[:])
	}

	writeInt(p.Generators)
	writeInt(len(p.Relators))
	for _, r := range p.Relators {
		writeInt(len(r))
		for _, l := range r {
			writeInt(l)
		}
	}

	return d.Sum64()
}
