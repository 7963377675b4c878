// SPDX-License-Identifier: MIT

package noise

// Constant returns the same value everywhere. It is not seedable.
type Constant[P Point] struct {
	value float64
}

// NewConstant returns a constant field. Non-finite values panic.
func NewConstant[P Point](value float64) Constant[P] {
	mustFinite(NodeConstant, "value", value)

	return Constant[P]{value: value}
}

// Sample returns the constant.
func (c Constant[P]) Sample(_ P) float64 {
	return c.value
}

// Value returns the constant.
func (c Constant[P]) Value() float64 {
	return c.value
}

// WithValue returns a copy holding value.
func (c Constant[P]) WithValue(value float64) Constant[P] {
	return NewConstant[P](value)
}
