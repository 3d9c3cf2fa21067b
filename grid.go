package hgt

import (
	"fmt"
	"math/big"
)

// A grid is the exact geometry of a tile's cells. It does no I/O.
type grid struct {
	cols        int
	rows        int
	cellWidth   *big.Rat
	cellHeight  *big.Rat
	areaWidth   *big.Rat
	areaHeight  *big.Rat
	corners     Corners
	topLeftCell Corners
}

// newGrid returns the grid of a tile with cols×rows samples whose bottom left
// sample is centered on bottomLeftCenter.
func newGrid(bottomLeftCenter LatLng, cols, rows int) *grid {
	g := &grid{
		cols:       cols,
		rows:       rows,
		cellWidth:  big.NewRat(1, int64(cols-1)),
		cellHeight: big.NewRat(1, int64(rows-1)),
	}
	one := big.NewRat(1, 1)
	g.areaWidth = new(big.Rat).Add(one, g.cellWidth)
	g.areaHeight = new(big.Rat).Add(one, g.cellHeight)
	g.corners = deriveCorners(bottomLeftCenter, g.cellWidth, g.cellHeight, g.areaWidth, g.areaHeight)

	topLeft := g.corners[TopLeft]
	zero := new(big.Rat)
	negCellHeight := new(big.Rat).Neg(g.cellHeight)
	g.topLeftCell = Corners{
		BottomLeft:  topLeft.translate(negCellHeight, zero),
		TopLeft:     topLeft.translate(zero, zero),
		TopRight:    topLeft.translate(zero, g.cellWidth),
		BottomRight: topLeft.translate(negCellHeight, g.cellWidth),
	}
	return g
}

// inBounds returns whether row and col address a sample.
func (g *grid) inBounds(row, col int) bool {
	return 0 <= row && row < g.rows && 0 <= col && col < g.cols
}

// checkBounds returns an error if row or col is out of bounds.
func (g *grid) checkBounds(row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("row %d, col %d: %w", row, col, ErrOutOfBounds)
	}
	return nil
}

// cellCorners returns the corners of the cell at row and col without
// checking bounds.
func (g *grid) cellCorners(row, col int) Corners {
	return g.topLeftCell.translate(new(big.Rat).Neg(mulInt(g.cellHeight, row)), mulInt(g.cellWidth, col))
}

// shift is cellCorners with bounds checking.
func (g *grid) shift(row, col int) (Corners, error) {
	if err := g.checkBounds(row, col); err != nil {
		return Corners{}, err
	}
	return g.cellCorners(row, col), nil
}

// blockCorners returns the corners of the rows×cols block of cells whose top
// left cell is at row and col.
func (g *grid) blockCorners(row, col, rows, cols int) Corners {
	topLeft := g.cellCorners(row, col)[TopLeft]
	zero := new(big.Rat)
	dLat := new(big.Rat).Neg(mulInt(g.cellHeight, rows))
	dLng := mulInt(g.cellWidth, cols)
	return Corners{
		BottomLeft:  topLeft.translate(dLat, zero),
		TopLeft:     topLeft,
		TopRight:    topLeft.translate(zero, dLng),
		BottomRight: topLeft.translate(dLat, dLng),
	}
}
