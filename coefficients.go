package sift

import (
	"fmt"
	"math"
	"strings"
)

// CoefficientCount is the fixed length of the tunable coefficient vector.
const CoefficientCount = 7

// Coefficients holds the tunable weights of the extraction pipeline. The
// first three control node scoring, the remaining four control the
// clustering traversal cost. Any real value is legal, including negative or
// zero; semantics degrade gracefully (a zero StrideCost means stride is
// ignored).
//
// A pipeline instance captures its coefficients at construction time and
// never mutates them, so concurrent trials with different vectors cannot
// interfere.
type Coefficients struct {
	// LinkDensity scales the (1 - linkDensity) rescaling of paragraphish
	// scores, penalizing link-heavy boilerplate such as navs and footers.
	LinkDensity float64

	// ParagraphTag is a flat bonus added to literal <p> elements.
	ParagraphTag float64

	// Length scales the inline text length of a candidate node.
	Length float64

	// DifferentDepthCost is charged per level of depth difference between
	// adjacent cluster members.
	DifferentDepthCost float64

	// DifferentTagCost is charged when adjacent cluster members have
	// different tag names.
	DifferentTagCost float64

	// SameTagCost is charged when adjacent cluster members share a tag name.
	SameTagCost float64

	// StrideCost is charged per tree-traversal step beyond the allowed
	// stride between adjacent cluster members.
	StrideCost float64
}

// DefaultCoefficients returns the hand-chosen baseline vector. It is the
// starting state for tuning and the vector used when no explicit
// coefficients are given.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		LinkDensity:        1.5,
		ParagraphTag:       4.5,
		Length:             2,
		DifferentDepthCost: 6.5,
		DifferentTagCost:   2,
		SameTagCost:        0.5,
		StrideCost:         0,
	}
}

// Validate returns an error if any coefficient is not a finite number.
func (c Coefficients) Validate() error {
	for i, v := range c.Vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Errorf(EINVALID, "coefficient %d (%s) must be a finite number", i, coefficientNames[i])
		}
	}
	return nil
}

// coefficientNames follows vector order.
var coefficientNames = [CoefficientCount]string{
	"linkDensity",
	"paragraphTag",
	"length",
	"differentDepthCost",
	"differentTagCost",
	"sameTagCost",
	"strideCost",
}

// Vector returns the coefficients as a fixed-length array. The order is
// significant: it is the parameter binding used by the tuner's neighbor
// function and by CoefficientsFromVector.
func (c Coefficients) Vector() [CoefficientCount]float64 {
	return [CoefficientCount]float64{
		c.LinkDensity,
		c.ParagraphTag,
		c.Length,
		c.DifferentDepthCost,
		c.DifferentTagCost,
		c.SameTagCost,
		c.StrideCost,
	}
}

// CoefficientsFromVector is the inverse of Vector.
func CoefficientsFromVector(v [CoefficientCount]float64) Coefficients {
	return Coefficients{
		LinkDensity:        v[0],
		ParagraphTag:       v[1],
		Length:             v[2],
		DifferentDepthCost: v[3],
		DifferentTagCost:   v[4],
		SameTagCost:        v[5],
		StrideCost:         v[6],
	}
}

// ParseCoefficients builds a Coefficients value from a raw slice, typically
// CLI input. The slice must have exactly CoefficientCount entries.
func ParseCoefficients(values []float64) (Coefficients, error) {
	if len(values) != CoefficientCount {
		return Coefficients{}, Errorf(EINVALID, "expected %d coefficients, got %d", CoefficientCount, len(values))
	}
	var v [CoefficientCount]float64
	copy(v[:], values)
	c := CoefficientsFromVector(v)
	if err := c.Validate(); err != nil {
		return Coefficients{}, err
	}
	return c, nil
}

// String formats the coefficients in vector order for display.
func (c Coefficients) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range c.Vector() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteString("]")
	return b.String()
}
