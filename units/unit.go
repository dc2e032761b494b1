package units

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownUnit = errors.New("units: unknown unit")

// Unit is a unit of measurement for quantities of kind K.
// The zero value is not a valid unit.
type Unit[K Kind] struct {
	name   string
	symbol string

	// number of base units in one of this unit
	factor float64
}

func unitOf[K Kind](def unitDef) Unit[K] {
	return Unit[K]{name: def.name, symbol: def.symbol, factor: def.factor}
}

// BaseUnit returns the canonical unit of the kind K.
func BaseUnit[K Kind]() Unit[K] {
	var k K
	return unitOf[K](k.catalog()[0])
}

// AllUnits returns every unit known for the kind K, starting with the base unit.
func AllUnits[K Kind]() []Unit[K] {
	var k K

	var result []Unit[K]
	for _, def := range k.catalog() {
		result = append(result, unitOf[K](def))
	}

	return result
}

// ParseUnit looks up a unit of kind K by its symbol or by its name.
// Symbols are matched exactly, names are matched case-insensitively.
func ParseUnit[K Kind](s string) (Unit[K], error) {
	var k K

	s = strings.TrimSpace(s)

	for _, def := range k.catalog() {
		if def.symbol == s {
			return unitOf[K](def), nil
		}
	}

	for _, def := range k.catalog() {
		if strings.EqualFold(def.name, s) || strings.EqualFold(def.plural, s) {
			return unitOf[K](def), nil
		}
	}

	return Unit[K]{}, fmt.Errorf("%w: %q is not a %s unit", ErrUnknownUnit, s, KindName[K]())
}

func (u Unit[K]) Name() string {
	return u.name
}

func (u Unit[K]) Symbol() string {
	return u.symbol
}

func (u Unit[K]) String() string {
	return u.symbol
}
