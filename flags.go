package enumbits

// HasFlag reports whether every flag set in y is also set in x. y is
// usually a single flag; passing a multi-bit y tests that all of its flags
// are present at once.
func HasFlag[F Flags](x, y F) bool {
	return x&y == y
}

// ToggleFlag flips the membership of y in x, in place: if x has all of y's
// flags they are cleared, otherwise they are all set. The decision is a
// single HasFlag test, not a per-bit XOR, so a multi-bit y that is only
// partially present in x ends up fully set rather than inverted bit by bit.
func ToggleFlag[F Flags](x *F, y F) {
	if HasFlag(*x, y) {
		*x &^= y
	} else {
		*x |= y
	}
}
