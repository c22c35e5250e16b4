package enumbits

import (
	"fmt"
	"math/bits"
)

// BitSet is a typed bit set over the enumeration E, backed by a single
// value of the unsigned storage type S: bit Underlying(v) set means v is a
// member. The zero value is the empty set.
//
// A BitSet is an ordinary comparable value. == reports whether two sets
// hold exactly the same raw bits, copies are independent, and no operation
// allocates. Concurrent use of independent copies needs no synchronization;
// sharing one addressable BitSet across goroutines is the caller's to
// guard.
//
// If E implements Bounded, bits at and above Underlying(EnumEnd()) fall
// outside the valid mask: BitSetFromBits, Union and Intersect clear them,
// and IsValid reports their absence. Without Bounded the mask spans the
// full width of S.
type BitSet[E Enum, S Storage] struct {
	bits S
}

// NewBitSet returns the set holding the given enumerators. Values may
// repeat; no values means the empty set.
func NewBitSet[E Enum, S Storage](values ...E) BitSet[E, S] {
	var s BitSet[E, S]
	for _, v := range values {
		s.Set(v)
	}
	return s
}

// BitSetFromBits reconstructs a set from raw storage bits, typically read
// back from an external format that persisted Bits(). Bits outside the
// valid mask are cleared, so the result is always valid no matter what the
// source held.
func BitSetFromBits[E Enum, S Storage](raw S) BitSet[E, S] {
	return BitSet[E, S]{bits: raw & maskOf[E, S]()}
}

// Set records v as a member and returns s for chaining. Setting an existing
// member is a no-op. Enumerators at or beyond the Bounded end still set
// their bit and leave the set invalid; enumerators at or beyond the storage
// width change nothing.
func (s *BitSet[E, S]) Set(v E) *BitSet[E, S] {
	s.bits |= S(1) << Underlying(v)
	return s
}

// Reset removes v from the set and returns s for chaining. Removing a
// non-member is a no-op.
func (s *BitSet[E, S]) Reset(v E) *BitSet[E, S] {
	s.bits &^= S(1) << Underlying(v)
	return s
}

// Flip toggles v's membership, as Reset if v is a member and Set otherwise,
// and returns s for chaining.
func (s *BitSet[E, S]) Flip(v E) *BitSet[E, S] {
	if s.Test(v) {
		return s.Reset(v)
	}
	return s.Set(v)
}

// Test reports whether v is a member.
func (s BitSet[E, S]) Test(v E) bool {
	return s.bits&(S(1)<<Underlying(v)) != 0
}

// All reports whether every member of other is also a member of s.
func (s BitSet[E, S]) All(other BitSet[E, S]) bool {
	return s.bits&other.bits == other.bits
}

// Any reports whether s and other share at least one member.
func (s BitSet[E, S]) Any(other BitSet[E, S]) bool {
	return s.bits&other.bits != 0
}

// Union returns the set of members of either s or other. Neither operand is
// modified and the result is masked to the valid bits.
func (s BitSet[E, S]) Union(other BitSet[E, S]) BitSet[E, S] {
	return BitSetFromBits[E, S](s.bits | other.bits)
}

// Intersect returns the set of members of both s and other. Neither operand
// is modified and the result is masked to the valid bits.
func (s BitSet[E, S]) Intersect(other BitSet[E, S]) BitSet[E, S] {
	return BitSetFromBits[E, S](s.bits & other.bits)
}

// IsValid reports whether no bit outside the valid mask is set. Mutating
// methods never check this on their own; it exists for callers that may
// have set an out-of-range enumerator and for auditing raw bits before
// trusting them.
func (s BitSet[E, S]) IsValid() bool {
	return s.bits&maskOf[E, S]() == s.bits
}

// Bits returns the raw storage value. Together with BitSetFromBits it forms
// the persistence boundary: external formats store a set as this plain
// integer and re-mask on the way back in.
func (s BitSet[E, S]) Bits() S {
	return s.bits
}

// Mask returns the storage bits considered valid for this instantiation:
// every bit below EnumEnd if E implements Bounded, otherwise all bits of S.
func (s BitSet[E, S]) Mask() S {
	return maskOf[E, S]()
}

// Width returns the number of bits in the storage type, bounding how many
// distinct enumerators this instantiation can represent.
func (s BitSet[E, S]) Width() int {
	return bits.OnesCount64(uint64(^S(0)))
}

// String renders the raw storage as zero-padded binary, for debugging.
func (s BitSet[E, S]) String() string {
	return fmt.Sprintf("%0*b", s.Width(), uint64(s.bits))
}

// maskOf derives the valid-bit mask for an instantiation. An end position
// at or beyond the storage width shifts to zero and the decrement wraps to
// all ones, which is exactly the unbounded mask.
func maskOf[E Enum, S Storage]() S {
	var e E
	if b, ok := any(e).(Bounded[E]); ok {
		return S(1)<<Underlying(b.EnumEnd()) - 1
	}
	return ^S(0)
}
