// Package enumbits provides type-safe bit sets and arithmetic over Go
// enumerations.
//
// Enumbits treats a defined integer type with named constants as a closed
// enumeration. It adds the operations plain integer constants lose when
// wrapped in a defined type, without giving up compile-time checking: typed
// bit sets, flag testing and toggling, stepping through enumerators, and
// offset arithmetic between enumerations. Everything resolves at compile
// time; there is no reflection and no allocation.
//
// # Quick Start
//
// Declare an enumeration, mark its traits, and wrap it in a BitSet:
//
//	type Cargo uint8
//
//	const (
//		CargoCoal Cargo = iota
//		CargoMail
//		CargoOil
//		cargoEnd
//	)
//
//	func (Cargo) EnumEnd() Cargo { return cargoEnd }
//
//	type CargoSet = enumbits.BitSet[Cargo, uint8]
//
//	accepted := enumbits.NewBitSet[Cargo, uint8](CargoCoal, CargoOil)
//	accepted.Set(CargoMail)
//	if accepted.Test(CargoOil) {
//	    ...
//	}
//
// # Opting In
//
// Generic operations are gated by one-line marker methods on the
// enumeration type, so only enumerations that declare an ability can use
// it:
//
//	func (Weekday) IncrementableEnum() {}    // Inc, Dec, PostInc, PostDec
//	func (CacheFlags) FlagsEnum() {}         // HasFlag, ToggleFlag
//	func (SpriteOffset) AddableEnum() {}     // Add
//	func (Cargo) EnumEnd() Cargo { ... }     // bounds the BitSet mask
//
// Passing a type without the marker does not compile.
//
// # Flag Values vs Bit Positions
//
// Two styles coexist and must not be mixed for one enumeration. A Flags
// enumeration declares flag values, constants that are already powers of
// two and combine with the native bitwise operators:
//
//	const (
//		CacheReadOnly CacheFlags = 1 << iota
//		CacheShared
//	)
//
// A BitSet enumeration declares bit positions, plain 0, 1, 2, ... counts
// that the set shifts into place itself. BitSet is the preferred style for
// new code: the position constants stay dense and the storage width is
// chosen independently of the enumeration.
//
// # Persistence
//
// Bits returns the raw storage integer and BitSetFromBits rebuilds a set
// from one, clearing any bits an external source may have corrupted:
//
//	stored := accepted.Bits()                                // to disk or wire
//	loaded := enumbits.BitSetFromBits[Cargo, uint8](stored)  // always valid
//
// # Key Features
//
//   - BitSet: Set/Reset/Flip/Test/All/Any/Union/Intersect over one integer
//   - Validity mask derived from the enumeration's declared end
//   - Compile-time opt-in via marker methods, no runtime registry
//   - Zero allocation, values are comparable and copy freely
package enumbits
