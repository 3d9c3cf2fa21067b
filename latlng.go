package hgt

import (
	"fmt"
	"math/big"
	"strings"
)

// Corner indexes into Corners.
const (
	BottomLeft = iota
	TopLeft
	TopRight
	BottomRight
)

// A LatLng is an exact position in decimal degrees.
type LatLng struct {
	Lat *big.Rat
	Lng *big.Rat
}

// A Point is a position in decimal degrees as floats.
type Point struct {
	Lat float64
	Lng float64
}

// Corners are the bottom left, top left, top right, and bottom right corners
// of a rectangle, in that order.
type Corners [4]LatLng

// FloatCorners are Corners as floats.
type FloatCorners [4]Point

// NewLatLng returns the exact position of lat and lng. Non-finite values
// produce a LatLng that no tile contains.
func NewLatLng(lat, lng float64) LatLng {
	return LatLng{
		Lat: new(big.Rat).SetFloat64(lat),
		Lng: new(big.Rat).SetFloat64(lng),
	}
}

// ParseLatLng parses lat and lng as exact decimals or fractions, e.g. "0.56"
// or "2399/2400".
func ParseLatLng(lat, lng string) (LatLng, error) {
	ratLat, ok := new(big.Rat).SetString(lat)
	if !ok {
		return LatLng{}, fmt.Errorf("%s: invalid latitude", lat)
	}
	ratLng, ok := new(big.Rat).SetString(lng)
	if !ok {
		return LatLng{}, fmt.Errorf("%s: invalid longitude", lng)
	}
	return LatLng{Lat: ratLat, Lng: ratLng}, nil
}

// valid returns whether both of p's components are set.
func (p LatLng) valid() bool {
	return p.Lat != nil && p.Lng != nil
}

// Equal returns whether p and q are the same position.
func (p LatLng) Equal(q LatLng) bool {
	return p.Lat.Cmp(q.Lat) == 0 && p.Lng.Cmp(q.Lng) == 0
}

// Float64 returns p as a Point.
func (p LatLng) Float64() Point {
	lat, _ := p.Lat.Float64()
	lng, _ := p.Lng.Float64()
	return Point{Lat: lat, Lng: lng}
}

func (p LatLng) String() string {
	return "(" + ratString(p.Lat) + ", " + ratString(p.Lng) + ")"
}

// translate returns p moved by dLat and dLng.
func (p LatLng) translate(dLat, dLng *big.Rat) LatLng {
	return LatLng{
		Lat: new(big.Rat).Add(p.Lat, dLat),
		Lng: new(big.Rat).Add(p.Lng, dLng),
	}
}

// Float64 returns c as FloatCorners.
func (c Corners) Float64() FloatCorners {
	var floatCorners FloatCorners
	for i, corner := range c {
		floatCorners[i] = corner.Float64()
	}
	return floatCorners
}

// Equal returns whether c and d have the same corners.
func (c Corners) Equal(d Corners) bool {
	for i := range c {
		if !c[i].Equal(d[i]) {
			return false
		}
	}
	return true
}

func (c Corners) String() string {
	ss := make([]string, len(c))
	for i, corner := range c {
		ss[i] = corner.String()
	}
	return "[" + strings.Join(ss, " ") + "]"
}

// translate returns c moved by dLat and dLng.
func (c Corners) translate(dLat, dLng *big.Rat) Corners {
	var translated Corners
	for i, corner := range c {
		translated[i] = corner.translate(dLat, dLng)
	}
	return translated
}

func ratString(r *big.Rat) string {
	if r == nil {
		return "<nil>"
	}
	return r.RatString()
}

// mulInt returns r*n.
func mulInt(r *big.Rat, n int) *big.Rat {
	return new(big.Rat).Mul(r, new(big.Rat).SetInt64(int64(n)))
}

// roundHalfEven returns r rounded to the nearest integer, with ties going to
// the even neighbor.
func roundHalfEven(r *big.Rat) int {
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	twiceM := m.Lsh(m, 1)
	switch cmp := twiceM.Cmp(r.Denom()); {
	case cmp < 0:
	case cmp > 0 || q.Bit(0) == 1:
		q.Add(q, big.NewInt(1))
	}
	return int(q.Int64())
}

// floor returns the largest integer not greater than r.
func floor(r *big.Rat) int {
	q := new(big.Int).Div(r.Num(), r.Denom())
	return int(q.Int64())
}
