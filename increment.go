package enumbits

// Inc advances v to the next enumerator in declaration order, in place, and
// returns the updated value. No range check is performed: not stepping past
// the last enumerator is the caller's contract, typically a loop condition
// against an end sentinel.
func Inc[E Incrementable](v *E) E {
	*v = E(Underlying(*v) + 1)
	return *v
}

// Dec steps v back to the previous enumerator, in place, and returns the
// updated value. No range check is performed.
func Dec[E Incrementable](v *E) E {
	*v = E(Underlying(*v) - 1)
	return *v
}

// PostInc advances v like Inc but returns the value v held before the step.
func PostInc[E Incrementable](v *E) E {
	prev := *v
	Inc(v)
	return prev
}

// PostDec steps v back like Dec but returns the value v held before the
// step.
func PostDec[E Incrementable](v *E) E {
	prev := *v
	Dec(v)
	return prev
}
