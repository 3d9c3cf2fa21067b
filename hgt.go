// Package hgt parses SRTM .hgt elevation tiles.
//
// A tile is a square grid of big-endian signed 16-bit samples covering one
// degree of latitude and longitude. Samples are cell centers, so a tile's
// outer bounds extend half a cell beyond the integer degrees in its name. All
// geometry is computed with exact rationals.
package hgt

import (
	"errors"
	"math"
)

// VoidValue is the raw sample value that marks missing data.
const VoidValue = -32768

var (
	ErrFormat            = errors.New("hgt: filename does not match tile pattern")
	ErrInvalidDimensions = errors.New("hgt: invalid dimensions")
	ErrNotFound          = errors.New("hgt: not found")
	ErrNotInTile         = errors.New("hgt: position not in tile")
	ErrOutOfBounds       = errors.New("hgt: row or column out of bounds")
	ErrSourceClosed      = errors.New("hgt: source closed")
)

// An Elevation is a sample value in meters. Valid is false for voids.
type Elevation struct {
	Value int16
	Valid bool
}

// newElevation returns the Elevation for a raw sample.
func newElevation(raw int16) Elevation {
	if raw == VoidValue {
		return Elevation{}
	}
	return Elevation{Value: raw, Valid: true}
}

// Float64 returns e in meters, or NaN if e is not valid.
func (e Elevation) Float64() float64 {
	if !e.Valid {
		return math.NaN()
	}
	return float64(e.Value)
}
