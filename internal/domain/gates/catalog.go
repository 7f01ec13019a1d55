package gates

import (
	"github.com/pcobb/galvan/internal/domain/catalog"
	"github.com/pcobb/galvan/internal/domain/component"
)

// Catalog returns a registry with every built-in gate registered.
func Catalog() *catalog.Registry {
	r := catalog.NewRegistry()
	r.Add(
		catalog.NewMetadata("and_gate", "AND Gate", Category, "Logical AND gate"),
		func() component.Component { return NewAnd() },
	)
	r.Add(
		catalog.NewMetadata("or_gate", "OR Gate", Category, "Logical OR gate"),
		func() component.Component { return NewOr() },
	)
	r.Add(
		catalog.NewMetadata("xor_gate", "XOR Gate", Category, "Logical XOR gate"),
		func() component.Component { return NewXor() },
	)
	r.Add(
		catalog.NewMetadata("odd_parity", "Odd Parity", Category, "Odd parity checker"),
		func() component.Component { return NewParity() },
	)
	return r
}
