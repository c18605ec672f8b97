// Package elastic evaluates direction-dependent engineering constants
// (Young's, shear and bulk moduli, Poisson's ratio, hardness) from a
// compliance matrix, over single directions, angle sweeps, or full
// sphere grids.
package elastic

import "fmt"

// Property is the closed set of directional quantities the evaluator
// computes. It replaces string property codes: an unrecognized code is
// a parse error at the boundary, never a silent default.
type Property int

const (
	YoungsModulus Property = iota
	ShearModulus
	BulkModulus
	PoissonRatio
	Hardness
)

// ParseProperty accepts the conventional single-letter codes.
func ParseProperty(code string) (Property, error) {
	switch code {
	case "E":
		return YoungsModulus, nil
	case "G":
		return ShearModulus, nil
	case "B":
		return BulkModulus, nil
	case "v":
		return PoissonRatio, nil
	case "H":
		return Hardness, nil
	}
	return 0, fmt.Errorf("unknown property code %q (want E, G, B, v or H)", code)
}

func (p Property) Code() string {
	return [...]string{"E", "G", "B", "v", "H"}[p]
}

func (p Property) String() string {
	switch p {
	case YoungsModulus:
		return "Young's Modulus (GPa)"
	case ShearModulus:
		return "Shear Modulus (GPa)"
	case BulkModulus:
		return "Bulk Modulus (GPa)"
	case PoissonRatio:
		return "Poisson Ratio"
	case Hardness:
		return "Hardness (GPa)"
	}
	return "Unknown"
}

// HasSpread reports whether the property carries a min/max band from
// the free in-plane rotation (shear and Poisson) or is single valued.
func (p Property) HasSpread() bool {
	return p == ShearModulus || p == PoissonRatio
}

// Sample holds the chi-aggregated value of a property at one
// direction. Single-valued properties set Min == Ave == Max.
type Sample struct {
	Min, Ave, Max float64
}
