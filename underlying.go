package enumbits

// Underlying converts an enumeration value to its underlying integer
// representation, widened to uint64. It is the single enum-to-integer
// conversion point the rest of the package routes through: bit positions,
// stepping and offsets are all defined in terms of it.
//
// Signed enumerations are sign-extended by Go's conversion rules, so
// negative enumerators produce very large bit positions. Enumerations used
// with BitSet should be unsigned or non-negative.
func Underlying[E Enum](v E) uint64 {
	return uint64(v)
}
