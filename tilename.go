package hgt

import (
	"fmt"
	"math/big"
	"path"
	"regexp"
	"strconv"
)

var tileNameRx = regexp.MustCompile(`^([NS])(\d+)([WE])(\d+)`)

// A TileCoord is the integer south west corner of a tile, in degrees.
type TileCoord struct {
	Lat int
	Lng int
}

// ParseTileName returns the center of the bottom left sample of the tile
// named name. Any directory and any suffix after the longitude are ignored.
func ParseTileName(name string) (LatLng, error) {
	base := path.Base(name)
	m := tileNameRx.FindStringSubmatch(base)
	if m == nil {
		return LatLng{}, fmt.Errorf("%s: %w", base, ErrFormat)
	}
	lat, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("%s: %w", base, ErrFormat)
	}
	lng, err := strconv.ParseInt(m[4], 10, 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("%s: %w", base, ErrFormat)
	}
	if m[1] == "S" {
		lat = -lat
	}
	if m[3] == "W" {
		lng = -lng
	}
	return LatLng{
		Lat: new(big.Rat).SetInt64(lat),
		Lng: new(big.Rat).SetInt64(lng),
	}, nil
}

// TileCoordOf returns the coordinate of the tile whose integer degrees
// contain pos.
func TileCoordOf(pos LatLng) TileCoord {
	return TileCoord{
		Lat: floor(pos.Lat),
		Lng: floor(pos.Lng),
	}
}

// TileFilename returns the conventional filename of the tile at tileCoord,
// e.g. N00E010.hgt.
func TileFilename(tileCoord TileCoord) string {
	ns, lat := 'N', tileCoord.Lat
	if lat < 0 {
		ns, lat = 'S', -lat
	}
	ew, lng := 'E', tileCoord.Lng
	if lng < 0 {
		ew, lng = 'W', -lng
	}
	return fmt.Sprintf("%c%02d%c%03d.hgt", ns, lat, ew, lng)
}

// deriveCorners returns the outer corners of a tile whose bottom left sample
// is centered on center.
func deriveCorners(center LatLng, cellWidth, cellHeight, areaWidth, areaHeight *big.Rat) Corners {
	halfCellWidth := new(big.Rat).Quo(cellWidth, big.NewRat(2, 1))
	halfCellHeight := new(big.Rat).Quo(cellHeight, big.NewRat(2, 1))
	zero := new(big.Rat)
	bottomLeft := LatLng{
		Lat: new(big.Rat).Sub(center.Lat, halfCellHeight),
		Lng: new(big.Rat).Sub(center.Lng, halfCellWidth),
	}
	topLeft := bottomLeft.translate(areaHeight, zero)
	return Corners{
		BottomLeft:  bottomLeft,
		TopLeft:     topLeft,
		TopRight:    topLeft.translate(zero, areaWidth),
		BottomRight: bottomLeft.translate(zero, areaWidth),
	}
}
