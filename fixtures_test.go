package enumbits_test

import "github.com/hupe1980/enumbits"

// Fixture enumerations shared by the package tests. Cargo is the primary
// bounded enumeration, Season the unbounded one, and the remaining types
// each opt into exactly one trait.

// Cargo is a bounded bit-position enumeration: five enumerators in a uint8
// storage leave three bits above the valid mask.
type Cargo uint8

const (
	CargoCoal Cargo = iota
	CargoMail
	CargoOil
	CargoGoods
	CargoGrain
	cargoEnd
)

func (Cargo) EnumEnd() Cargo { return cargoEnd }

// CargoSet pins the storage width so call sites do not repeat type
// arguments.
type CargoSet = enumbits.BitSet[Cargo, uint8]

// Season has no declared end, so its mask spans the whole storage type.
type Season uint8

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonAutumn
	SeasonWinter
)

type SeasonSet = enumbits.BitSet[Season, uint8]

// Tile is an unbounded enumeration used by the randomized and comparative
// tests to address all 64 positions of a uint64 storage.
type Tile uint8

type TileSet = enumbits.BitSet[Tile, uint64]

// Weekday opts into stepping.
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	weekdayEnd
)

func (Weekday) IncrementableEnum() {}

// CacheFlags is a flag-value enumeration: its constants are powers of two
// and combine with the native bitwise operators.
type CacheFlags uint8

const (
	CacheReadOnly CacheFlags = 1 << iota
	CacheShared
	CachePersistent
)

func (CacheFlags) FlagsEnum() {}

// SpriteID is a plain value enumeration; SpriteOffset is an offset
// enumeration addable onto it.
type SpriteID uint32

const (
	SpriteCursor  SpriteID = 4
	SpriteVehicle SpriteID = 1024
)

type SpriteOffset uint16

const (
	OffsetFacingNorth SpriteOffset = iota
	OffsetFacingEast
	OffsetFacingSouth
	OffsetFacingWest
)

func (SpriteOffset) AddableEnum() {}
