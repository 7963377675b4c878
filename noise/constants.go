// SPDX-License-Identifier: MIT

package noise

//-----------------------------------------------------------------------------
// Node names
//   used as the Node field of *ConfigurationError.
//-----------------------------------------------------------------------------

const (
	NodeWorley        = "Worley"
	NodeConstant      = "Constant"
	NodeAbs           = "Abs"
	NodeExponent      = "Exponent"
	NodeClamp         = "Clamp"
	NodeScaleBias     = "ScaleBias"
	NodeInvert        = "Invert"
	NodeTerrace       = "Terrace"
	NodeCurve         = "Curve"
	NodeAdd           = "Add"
	NodeMultiply      = "Multiply"
	NodeMin           = "Min"
	NodeMax           = "Max"
	NodePower         = "Power"
	NodeBlend         = "Blend"
	NodeSelect        = "Select"
	NodeTranslate     = "TranslatePoint"
	NodeScalePoint    = "ScalePoint"
	NodeRotate        = "RotatePoint"
	NodeDisplace      = "Displace"
	NodeTurbulence    = "Turbulence"
	NodeFbm           = "Fbm"
	NodeBillow        = "Billow"
	NodeRidgedMulti   = "RidgedMulti"
	NodeHybridMulti   = "HybridMulti"
	NodeBasicMulti    = "BasicMulti"
	NodeFractalConfig = "FractalConfig"
)

//-----------------------------------------------------------------------------
// Seeds and fractal defaults
//-----------------------------------------------------------------------------

// DefaultSeed is the seed of zero-value primitives.
const DefaultSeed uint32 = 0

const (
	// DefaultOctaves is the number of octaves summed by a new fractal.
	DefaultOctaves = 6
	// DefaultFrequency is the frequency of the first octave.
	DefaultFrequency = 1.0
	// DefaultLacunarity is the per-octave frequency multiplier.
	DefaultLacunarity = 2.0
	// DefaultPersistence is the per-octave amplitude multiplier.
	DefaultPersistence = 0.5
	// MaxOctaves bounds the octave count; beyond it octaves fall below
	// float64 resolution at default persistence.
	MaxOctaves = 32
)

//-----------------------------------------------------------------------------
// Modifier and combiner defaults
//-----------------------------------------------------------------------------

const (
	DefaultExponent = 1.0

	DefaultClampLower = -1.0
	DefaultClampUpper = 1.0

	DefaultScale = 1.0
	DefaultBias  = 0.0

	DefaultSelectLower   = -1.0
	DefaultSelectUpper   = 1.0
	DefaultSelectFalloff = 0.0

	// MinTerracePoints is the fewest control points a terrace curve accepts.
	MinTerracePoints = 2
	// MinCurvePoints is the fewest control points a spline curve accepts.
	MinCurvePoints = 4
)

//-----------------------------------------------------------------------------
// Fractal-specific defaults
//-----------------------------------------------------------------------------

const (
	// DefaultRidgedOffset is added to the inverted octave signal.
	DefaultRidgedOffset = 1.0
	// DefaultRidgedGain scales the feedback weight between octaves.
	DefaultRidgedGain = 2.0

	DefaultTurbulencePower     = 1.0
	DefaultTurbulenceFrequency = 1.0
	DefaultTurbulenceRoughness = 3
)
