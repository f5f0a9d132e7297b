package prop

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of u, consistent with Equal: structurally
// equal propositions hash equally within a process. It panics if u is
// nil.
func (u *Prop) Hash() uint64 {
	if u == nil {
		panic("prop: Hash called on nil proposition")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(u.Kind))
	switch u.Kind {
	case AtomicKind:
		h.WriteString(u.Name)
	case NotKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], u.Left.Hash())
		h.Write(b[:])
	default:
		// Combine child hashes order-dependently.
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], u.Left.Hash())
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], u.Right.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}
