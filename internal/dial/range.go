package dial

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange is returned when max is not greater than min.
var ErrInvalidRange = errors.New("dial: max value must be greater than min value")

// Range is the nominal value range of the dial.
type Range struct {
	Min int
	Max int
}

// MaxRulerLines caps Max-Min. The finest ring draws five marks per ruler
// line, so larger spans cannot be rendered.
const MaxRulerLines = 10000

// NewRange validates and returns a Range.
func NewRange(min, max int) (Range, error) {
	if max <= min {
		return Range{}, fmt.Errorf("%w (min=%d, max=%d)", ErrInvalidRange, min, max)
	}
	// A span that overflows int wraps below zero.
	if span := max - min; span <= 0 || span > MaxRulerLines {
		return Range{}, fmt.Errorf("%w: span of %d..%d exceeds %d ruler lines", ErrInvalidRange, min, max, MaxRulerLines)
	}
	return Range{Min: min, Max: max}, nil
}

// RulerLines is the number of minor value subdivisions.
func (r Range) RulerLines() int {
	return r.Max - r.Min
}

// ValueAt maps a rotation in degrees to the selected value. The factor of
// two comes from labels sitting on every other coarse tick.
func (r Range) ValueAt(theta float64) float64 {
	return float64(r.Min) - (theta*float64(r.RulerLines())/360)/2
}

// RotationFor is the inverse of ValueAt.
func (r Range) RotationFor(value float64) float64 {
	return -360 * (value - float64(r.Min)) * 2 / float64(r.RulerLines())
}

// DegreesPerUnit is how far the dial turns for one unit of value.
func (r Range) DegreesPerUnit() float64 {
	return 720 / float64(r.RulerLines())
}

// Bounds returns the rotations at which the value equals Max and Min. The
// first is the smaller angle since rotation and value move in opposite
// directions.
func (r Range) Bounds() (lo, hi float64) {
	return r.RotationFor(float64(r.Max)), r.RotationFor(float64(r.Min))
}

// Clamp limits theta to Bounds.
func (r Range) Clamp(theta float64) float64 {
	lo, hi := r.Bounds()
	return math.Max(lo, math.Min(hi, theta))
}
