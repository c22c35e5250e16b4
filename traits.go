package enumbits

import "golang.org/x/exp/constraints"

// Enum is the constraint for enumeration value types: any defined integer
// type whose named constants form the enumeration. Enumerators are assumed
// to be contiguous from zero, since their underlying values select bit
// positions directly.
type Enum interface {
	constraints.Integer
}

// Storage is the constraint for BitSet storage types. The bit width of the
// chosen type bounds how many distinct enumerators a BitSet can represent.
type Storage interface {
	constraints.Unsigned
}

// Incrementable is the constraint for enumeration types that opt into the
// stepping functions Inc, Dec, PostInc and PostDec. An enumeration opts in
// by declaring the marker method:
//
//	type Weekday uint8
//
//	func (Weekday) IncrementableEnum() {}
//
// Types that have not opted in fail to compile when passed to the stepping
// functions.
type Incrementable interface {
	constraints.Integer
	IncrementableEnum()
}

// Flags is the constraint for enumeration types whose values are composable
// bit flags: single-bit constants combined with | into a value of the same
// type. An enumeration opts in by declaring the marker method:
//
//	type CacheFlags uint8
//
//	func (CacheFlags) FlagsEnum() {}
//
// Defined integer types carry |, &, ^, &^ and the ^ complement natively;
// the marker records the intent at the declaration site and gates HasFlag
// and ToggleFlag at compile time.
type Flags interface {
	constraints.Integer
	FlagsEnum()
}

// Addable is the constraint for enumeration types that represent an offset
// addable onto values of any other enumeration. An enumeration opts in by
// declaring the marker method:
//
//	type SpriteOffset uint16
//
//	func (SpriteOffset) AddableEnum() {}
type Addable interface {
	constraints.Integer
	AddableEnum()
}

// Bounded is implemented by enumeration types that declare a value one past
// their highest valid enumerator. BitSet derives its mask of valid bits
// from it; enumerations that do not implement Bounded get the full width of
// their storage type.
//
//	type Facility uint8
//
//	const (
//		FacilityDock Facility = iota
//		FacilityAirport
//		facilityEnd
//	)
//
//	func (Facility) EnumEnd() Facility { return facilityEnd }
type Bounded[E any] interface {
	EnumEnd() E
}
