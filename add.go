package enumbits

// Add offsets base by a value of an opted-in offset enumeration and returns
// a value of base's type. It serves enumerations whose values are
// displacements into another enumeration's range, such as sprite or string
// table offsets. No range check is performed.
func Add[E Enum, D Addable](base E, offset D) E {
	return E(Underlying(base) + Underlying(offset))
}
