package hgt

import (
	"fmt"
	"math"
	"math/big"
	"path"
)

// A Tile is the immutable geometry of an HGT tile: its dimensions, its cells,
// and the mapping between positions and samples.
type Tile struct {
	name             string
	bottomLeftCenter LatLng
	grid             *grid
}

// NewTile returns the Tile for the file called name with cols×rows samples.
func NewTile(name string, cols, rows int) (*Tile, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("%dx%d: %w", cols, rows, ErrInvalidDimensions)
	}
	bottomLeftCenter, err := ParseTileName(name)
	if err != nil {
		return nil, err
	}
	return &Tile{
		name:             path.Base(name),
		bottomLeftCenter: bottomLeftCenter,
		grid:             newGrid(bottomLeftCenter, cols, rows),
	}, nil
}

// squareSide returns the side of a square grid of 16-bit samples stored in
// size bytes.
func squareSide(size int64) int {
	return int(math.Sqrt(float64(size / 2)))
}

// Name returns the base name of t's file.
func (t *Tile) Name() string {
	return t.name
}

// Cols returns the number of samples in each row.
func (t *Tile) Cols() int {
	return t.grid.cols
}

// Rows returns the number of samples in each column.
func (t *Tile) Rows() int {
	return t.grid.rows
}

// TotalSamples returns the number of samples in t.
func (t *Tile) TotalSamples() int {
	return t.grid.rows * t.grid.cols
}

// CellWidth returns the distance in degrees between adjacent sample centers
// in a row.
func (t *Tile) CellWidth() *big.Rat {
	return new(big.Rat).Set(t.grid.cellWidth)
}

// CellHeight returns the distance in degrees between adjacent sample centers
// in a column.
func (t *Tile) CellHeight() *big.Rat {
	return new(big.Rat).Set(t.grid.cellHeight)
}

// AreaWidth returns the width in degrees of t including the half cell
// margins.
func (t *Tile) AreaWidth() *big.Rat {
	return new(big.Rat).Set(t.grid.areaWidth)
}

// AreaHeight returns the height in degrees of t including the half cell
// margins.
func (t *Tile) AreaHeight() *big.Rat {
	return new(big.Rat).Set(t.grid.areaHeight)
}

// BottomLeftCenter returns the center of t's bottom left sample.
func (t *Tile) BottomLeftCenter() LatLng {
	return t.bottomLeftCenter.translate(new(big.Rat), new(big.Rat))
}

// Corners returns t's outer corners.
func (t *Tile) Corners() Corners {
	return t.grid.corners.translate(new(big.Rat), new(big.Rat))
}

// TopLeftCell returns the corners of the cell at row 0, column 0.
func (t *Tile) TopLeftCell() Corners {
	return t.grid.topLeftCell.translate(new(big.Rat), new(big.Rat))
}

// CellCorners returns the corners of the cell at row and col. It does not
// check bounds; see Shift.
func (t *Tile) CellCorners(row, col int) Corners {
	return t.grid.cellCorners(row, col)
}

// Shift returns the corners of the cell at row and col, or ErrOutOfBounds.
func (t *Tile) Shift(row, col int) (Corners, error) {
	return t.grid.shift(row, col)
}

// CellCenter returns the position of the sample at row and col.
func (t *Tile) CellCenter(row, col int) LatLng {
	return t.bottomLeftCenter.translate(
		mulInt(t.grid.cellHeight, t.grid.rows-1-row),
		mulInt(t.grid.cellWidth, col),
	)
}

// Contains returns whether pos is strictly inside t's outer corners.
func (t *Tile) Contains(pos LatLng) bool {
	if !pos.valid() {
		return false
	}
	bottomLeft, topRight := t.grid.corners[BottomLeft], t.grid.corners[TopRight]
	return bottomLeft.Lat.Cmp(pos.Lat) < 0 &&
		bottomLeft.Lng.Cmp(pos.Lng) < 0 &&
		pos.Lat.Cmp(topRight.Lat) < 0 &&
		pos.Lng.Cmp(topRight.Lng) < 0
}

// Index returns the index of the sample at row and col.
func (t *Tile) Index(row, col int) (int, error) {
	if err := t.grid.checkBounds(row, col); err != nil {
		return 0, err
	}
	return row*t.grid.cols + col, nil
}

// Locate returns the row, column, and index of the sample nearest to pos.
// Positions exactly half way between two samples resolve to the even
// multiple of the cell size from the bottom left sample.
func (t *Tile) Locate(pos LatLng) (row, col, index int, err error) {
	if !t.Contains(pos) {
		return 0, 0, 0, fmt.Errorf("%s: %s: %w", pos, t.name, ErrNotInTile)
	}
	dLat := new(big.Rat).Sub(pos.Lat, t.bottomLeftCenter.Lat)
	dLng := new(big.Rat).Sub(pos.Lng, t.bottomLeftCenter.Lng)
	row = t.grid.rows - 1 - roundHalfEven(dLat.Quo(dLat, t.grid.cellHeight))
	col = roundHalfEven(dLng.Quo(dLng, t.grid.cellWidth))
	index = row*t.grid.cols + col
	return row, col, index, nil
}
