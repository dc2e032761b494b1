package units

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

var ErrDivisionByZero = errors.New("units: division by zero")

// Quantity is a scalar physical quantity of kind K.
//
// The zero value is a quantity of zero in any unit.
type Quantity[K Kind] struct {
	// value in the base unit of K
	base float64
}

// From creates a new quantity of the given value measured in unit.
func From[K Kind](value float64, unit Unit[K]) Quantity[K] {
	return Quantity[K]{base: value * unit.factor}
}

// Zero returns the zero quantity of kind K.
func Zero[K Kind]() Quantity[K] {
	return Quantity[K]{}
}

// As returns the value of the quantity measured in unit.
func (q Quantity[K]) As(unit Unit[K]) float64 {
	return q.base / unit.factor
}

func (q Quantity[K]) Add(other Quantity[K]) Quantity[K] {
	return Quantity[K]{base: q.base + other.base}
}

func (q Quantity[K]) Sub(other Quantity[K]) Quantity[K] {
	return Quantity[K]{base: q.base - other.base}
}

func (q Quantity[K]) Neg() Quantity[K] {
	return Quantity[K]{base: -q.base}
}

func (q Quantity[K]) Abs() Quantity[K] {
	return Quantity[K]{base: math.Abs(q.base)}
}

// Mul scales the quantity by a dimensionless scalar.
func (q Quantity[K]) Mul(scalar float64) Quantity[K] {
	return Quantity[K]{base: q.base * scalar}
}

// Div divides the quantity by a dimensionless scalar.
func (q Quantity[K]) Div(scalar float64) (Quantity[K], error) {
	if scalar == 0 {
		return Quantity[K]{}, ErrDivisionByZero
	}

	return Quantity[K]{base: q.base / scalar}, nil
}

// Ratio returns the dimensionless ratio q / other.
func (q Quantity[K]) Ratio(other Quantity[K]) (float64, error) {
	if other.base == 0 {
		return 0, ErrDivisionByZero
	}

	return q.base / other.base, nil
}

func (q Quantity[K]) IsZero() bool {
	return q.base == 0
}

// Compare returns -1, 0 or +1 depending on whether q is less than,
// equal to or greater than other.
func (q Quantity[K]) Compare(other Quantity[K]) int {
	return cmp.Compare(q.base, other.base)
}

func (q Quantity[K]) String() string {
	return fmt.Sprintf("%v %s", q.base, BaseUnit[K]().symbol)
}
