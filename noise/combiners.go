// SPDX-License-Identifier: MIT

package noise

import "math"

// binary holds the two sources of a combiner. Seeding and fractal settings
// are forwarded to both; Seed reports the first seedable one.
type binary[P Point] struct {
	a, b Source[P]
}

func newBinary[P Point](node string, a, b Source[P]) binary[P] {
	mustSource(node, a)
	mustSource(node, b)

	return binary[P]{a: a, b: b}
}

// Sources returns both operands.
func (c binary[P]) Sources() (a, b Source[P]) {
	return c.a, c.b
}

// Seed reports the seed of the first seedable operand, or 0.
func (c binary[P]) Seed() uint32 {
	seed, _ := c.seedOf()

	return seed
}

func (c binary[P]) seedOf() (uint32, bool) {
	return firstSeed(c.a, c.b)
}

// Fractal reports the configuration of the first fractal operand.
func (c binary[P]) Fractal() (FractalConfig, bool) {
	return firstFractal(c.a, c.b)
}

func (c binary[P]) reseeded(seed uint32) binary[P] {
	return binary[P]{a: WithSeed(c.a, seed), b: WithSeed(c.b, seed)}
}

func (c binary[P]) withFractal(cfg FractalConfig) binary[P] {
	return binary[P]{a: WithFractal(c.a, cfg), b: WithFractal(c.b, cfg)}
}

// Add outputs a + b.
type Add[P Point] struct {
	binary[P]
}

// NewAdd combines a and b.
func NewAdd[P Point](a, b Source[P]) Add[P] {
	return Add[P]{binary: newBinary(NodeAdd, a, b)}
}

// Sample returns a(p) + b(p).
func (c Add[P]) Sample(p P) float64 {
	return c.a.Sample(p) + c.b.Sample(p)
}

// WithSeed reseeds both operands.
func (c Add[P]) WithSeed(seed uint32) Add[P] {
	c.binary = c.reseeded(seed)

	return c
}

// Reseed implements Seedable.
func (c Add[P]) Reseed(seed uint32) Source[P] { return c.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (c Add[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	c.binary = c.withFractal(cfg)

	return c
}

// Multiply outputs a · b.
type Multiply[P Point] struct {
	binary[P]
}

// NewMultiply combines a and b.
func NewMultiply[P Point](a, b Source[P]) Multiply[P] {
	return Multiply[P]{binary: newBinary(NodeMultiply, a, b)}
}

// Sample returns a(p) · b(p).
func (c Multiply[P]) Sample(p P) float64 {
	return c.a.Sample(p) * c.b.Sample(p)
}

// WithSeed reseeds both operands.
func (c Multiply[P]) WithSeed(seed uint32) Multiply[P] {
	c.binary = c.reseeded(seed)

	return c
}

// Reseed implements Seedable.
func (c Multiply[P]) Reseed(seed uint32) Source[P] { return c.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (c Multiply[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	c.binary = c.withFractal(cfg)

	return c
}

// Min outputs the smaller of a and b.
type Min[P Point] struct {
	binary[P]
}

// NewMin combines a and b.
func NewMin[P Point](a, b Source[P]) Min[P] {
	return Min[P]{binary: newBinary(NodeMin, a, b)}
}

// Sample returns min(a(p), b(p)).
func (c Min[P]) Sample(p P) float64 {
	return math.Min(c.a.Sample(p), c.b.Sample(p))
}

// WithSeed reseeds both operands.
func (c Min[P]) WithSeed(seed uint32) Min[P] {
	c.binary = c.reseeded(seed)

	return c
}

// Reseed implements Seedable.
func (c Min[P]) Reseed(seed uint32) Source[P] { return c.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (c Min[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	c.binary = c.withFractal(cfg)

	return c
}

// Max outputs the larger of a and b.
type Max[P Point] struct {
	binary[P]
}

// NewMax combines a and b.
func NewMax[P Point](a, b Source[P]) Max[P] {
	return Max[P]{binary: newBinary(NodeMax, a, b)}
}

// Sample returns max(a(p), b(p)).
func (c Max[P]) Sample(p P) float64 {
	return math.Max(c.a.Sample(p), c.b.Sample(p))
}

// WithSeed reseeds both operands.
func (c Max[P]) WithSeed(seed uint32) Max[P] {
	c.binary = c.reseeded(seed)

	return c
}

// Reseed implements Seedable.
func (c Max[P]) Reseed(seed uint32) Source[P] { return c.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (c Max[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	c.binary = c.withFractal(cfg)

	return c
}

// Power outputs a raised to b. A negative base with a non-integral exponent
// yields NaN, as math.Pow does.
type Power[P Point] struct {
	binary[P]
}

// NewPower combines base a and exponent b.
func NewPower[P Point](a, b Source[P]) Power[P] {
	return Power[P]{binary: newBinary(NodePower, a, b)}
}

// Sample returns a(p)^b(p).
func (c Power[P]) Sample(p P) float64 {
	return math.Pow(c.a.Sample(p), c.b.Sample(p))
}

// WithSeed reseeds both operands.
func (c Power[P]) WithSeed(seed uint32) Power[P] {
	c.binary = c.reseeded(seed)

	return c
}

// Reseed implements Seedable.
func (c Power[P]) Reseed(seed uint32) Source[P] { return c.WithSeed(seed) }

// ApplyFractal implements MultiFractal.
func (c Power[P]) ApplyFractal(cfg FractalConfig) Source[P] {
	c.binary = c.withFractal(cfg)

	return c
}
