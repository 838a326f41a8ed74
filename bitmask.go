package lookout

import "math/bits"

const (
	wordShift = 5
	wordBits  = 1 << wordShift
	bitMask   = wordBits - 1
)

// bitmask is a growable set of ComponentIDs stored as 32-bit words.
// Word i bit b is set iff id 32*i+b is in the set.
type bitmask []uint32

func newBitmask(ids ...ComponentID) bitmask {
	var m bitmask
	for _, id := range ids {
		m = m.set(id)
	}
	return m
}

// set marks id, growing the mask with zero words as needed.
func (m bitmask) set(id ComponentID) bitmask {
	word := int(id >> wordShift)
	for len(m) <= word {
		m = append(m, 0)
	}
	m[word] |= 1 << (id & bitMask)
	return m
}

// clear unmarks id. Masks never shrink.
func (m bitmask) clear(id ComponentID) bitmask {
	word := int(id >> wordShift)
	if word >= len(m) {
		return m
	}
	m[word] &^= 1 << (id & bitMask)
	return m
}

func (m bitmask) has(id ComponentID) bool {
	word := int(id >> wordShift)
	if word >= len(m) {
		return false
	}
	return m[word]&(1<<(id&bitMask)) != 0
}

// matches reports whether m is a superset of query. Words missing from m
// count as zero.
func (m bitmask) matches(query bitmask) bool {
	for i, want := range query {
		var have uint32
		if i < len(m) {
			have = m[i]
		}
		if have&want != want {
			return false
		}
	}
	return true
}

func (m bitmask) isZero() bool {
	for _, w := range m {
		if w != 0 {
			return false
		}
	}
	return true
}

// forEachSet calls fn for every set id in ascending order.
func (m bitmask) forEachSet(fn func(id ComponentID)) {
	for i, word := range m {
		for word != 0 {
			pos := bits.TrailingZeros32(word)
			fn(ComponentID(i<<wordShift + pos))
			word &^= 1 << pos
		}
	}
}

func (m bitmask) clone() bitmask {
	if m == nil {
		return nil
	}
	out := make(bitmask, len(m))
	copy(out, m)
	return out
}
