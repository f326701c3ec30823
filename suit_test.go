package fixedmap

import "fmt"

// Suit is the enumeration used across the package tests. The declarations
// below are a hand-maintained mirror of `fixedmapgen -type=Suit` output so
// the tests do not depend on running the generator; internal/codegen's
// golden test pins the generated form.
type Suit int

const (
	Spade Suit = iota
	Heart
	Diamond
	Club
)

// String is hand-written (fixedmapgen leaves naming to stringer); it keeps
// test failures readable.
func (s Suit) String() string {
	switch s {
	case Spade:
		return "Spade"
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	case Club:
		return "Club"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

func DefaultSuit() Suit { return Spade }

type SuitDomain struct{}

func (SuitDomain) Size() int { return 4 }

func (SuitDomain) Index(key Suit) int {
	if key < Spade || key > Club {
		return -1
	}
	return int(key - Spade)
}

func (SuitDomain) Variant(i int) Suit { return suitVariants[i] }

var suitVariants = [...]Suit{
	Spade,
	Heart,
	Diamond,
	Club,
}

type (
	SuitMapStorage[V any] = DirectMapStorage[Suit, SuitDomain, V]
	SuitSetStorage       = DirectSetStorage[Suit, SuitDomain]
)

func NewSuitMapStorage[V any]() *SuitMapStorage[V] {
	return NewDirectMapStorage[Suit, SuitDomain, V]()
}

func NewSuitSetStorage() *SuitSetStorage {
	return NewDirectSetStorage[Suit, SuitDomain]()
}

func NewSuitMap[V any]() *Map[Suit, V] {
	return NewMap[Suit, V](NewSuitMapStorage[V]())
}

func NewSuitSet() *Set[Suit] {
	return NewSet[Suit](NewSuitSetStorage())
}

var (
	_ Domain[Suit]               = SuitDomain{}
	_ MapStorage[Suit, struct{}] = (*SuitMapStorage[struct{}])(nil)
	_ SetStorage[Suit]           = (*SuitSetStorage)(nil)
)
