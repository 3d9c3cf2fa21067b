package hgt

// A Sample is a single sample and the cell it covers.
type Sample struct {
	Row          int
	Col          int
	Index        int
	Corners      Corners
	FloatCorners FloatCorners // Only populated if asFloat was requested.
	Elevation    Elevation
}

// A ValueIterator iterates over every sample of a tile in row-major order,
// starting at the top left. It is single pass.
//
//	it := p.Values(false)
//	for it.Next() {
//		sample := it.Sample()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type ValueIterator struct {
	parser  *Parser
	asFloat bool
	index   int
	sample  Sample
	err     error
}

// Len returns the total number of samples the iterator yields.
func (it *ValueIterator) Len() int {
	return it.parser.TotalSamples()
}

// Next advances to the next sample. It returns false when there are no more
// samples or an error occurred.
func (it *ValueIterator) Next() bool {
	if it.err != nil || it.index >= it.parser.TotalSamples() {
		return false
	}
	raw, err := it.parser.reader.read(it.index)
	if err != nil {
		it.err = err
		return false
	}
	cols := it.parser.Cols()
	row, col := it.index/cols, it.index%cols
	it.sample = Sample{
		Row:       row,
		Col:       col,
		Index:     it.index,
		Corners:   it.parser.grid.cellCorners(row, col),
		Elevation: newElevation(raw),
	}
	if it.asFloat {
		it.sample.FloatCorners = it.sample.Corners.Float64()
	}
	it.index++
	return true
}

// Sample returns the current sample.
func (it *ValueIterator) Sample() Sample {
	return it.sample
}

// Err returns the first error encountered.
func (it *ValueIterator) Err() error {
	return it.err
}
