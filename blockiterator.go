package hgt

// A Block is a rectangular group of samples.
type Block struct {
	Row          int // Row of the top left sample.
	Col          int // Column of the top left sample.
	Index        int // Index of the top left sample.
	Corners      Corners
	FloatCorners FloatCorners // Only populated if asFloat was requested.
	Values       [][]int16    // Raw values, row by row. Voids are not mapped.
}

// A BlockIterator iterates over a tile in blocks of up to width×height
// samples. Blocks are visited left to right, then top to bottom. Blocks on
// the right and bottom edges are smaller when the tile's dimensions are not
// multiples of the block's.
type BlockIterator struct {
	parser  *Parser
	width   int
	height  int
	asFloat bool
	row     int
	col     int
	block   Block
	err     error
}

// Len returns the total number of blocks the iterator yields.
func (it *BlockIterator) Len() int {
	blocksDown := (it.parser.Rows() + it.height - 1) / it.height
	blocksAcross := (it.parser.Cols() + it.width - 1) / it.width
	return blocksDown * blocksAcross
}

// Next advances to the next block.
func (it *BlockIterator) Next() bool {
	if it.err != nil || it.row >= it.parser.Rows() {
		return false
	}

	rows := min(it.height, it.parser.Rows()-it.row)
	cols := min(it.width, it.parser.Cols()-it.col)
	index := it.row*it.parser.Cols() + it.col
	values := make([][]int16, rows)
	flat := make([]int16, rows*cols)
	for r := range rows {
		values[r] = flat[r*cols : (r+1)*cols]
		if err := it.parser.reader.readSpan(index+r*it.parser.Cols(), values[r]); err != nil {
			it.err = err
			return false
		}
	}

	it.block = Block{
		Row:     it.row,
		Col:     it.col,
		Index:   index,
		Corners: it.parser.grid.blockCorners(it.row, it.col, rows, cols),
		Values:  values,
	}
	if it.asFloat {
		it.block.FloatCorners = it.block.Corners.Float64()
	}

	it.col += it.width
	if it.col >= it.parser.Cols() {
		it.col = 0
		it.row += it.height
	}
	return true
}

// Block returns the current block.
func (it *BlockIterator) Block() Block {
	return it.block
}

// Err returns the first error encountered.
func (it *BlockIterator) Err() error {
	return it.err
}
