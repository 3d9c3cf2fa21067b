package hgt

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// A Parser reads elevations from an open HGT tile. A Parser and its
// iterators must not be used concurrently.
type Parser struct {
	*Tile
	closer        io.Closer
	reader        sampleReader
	cols          int
	rows          int
	pageCacheSize int
}

// A ParserOption sets an option on a Parser.
type ParserOption func(*Parser)

// WithDimensions sets the number of samples per row (cols) and per column
// (rows). By default the tile is assumed to be square and the dimensions are
// derived from the file size.
func WithDimensions(cols, rows int) ParserOption {
	return func(p *Parser) {
		p.cols = cols
		p.rows = rows
	}
}

// WithPageCacheSize serves reads through an in-memory cache of at most
// pageCacheSize bytes. The file must implement io.ReaderAt.
func WithPageCacheSize(pageCacheSize int) ParserOption {
	return func(p *Parser) {
		p.pageCacheSize = pageCacheSize
	}
}

// Open opens the tile filename in fsys. The caller must call Close.
func Open(fsys fs.FS, filename string, options ...ParserOption) (*Parser, error) {
	file, err := fsys.Open(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	case err != nil:
		return nil, err
	}
	ok := false
	defer func() {
		if !ok {
			_ = file.Close()
		}
	}()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, err
	}
	rs, isReadSeeker := file.(io.ReadSeeker)
	if !isReadSeeker {
		return nil, fmt.Errorf("%s: %w", filename, errors.ErrUnsupported)
	}

	p, err := newParser(filename, rs, fileInfo.Size(), options)
	if err != nil {
		return nil, err
	}

	if p.pageCacheSize > 0 {
		readerAt, isReaderAt := file.(io.ReaderAt)
		if !isReaderAt {
			return nil, fmt.Errorf("%s: %w", filename, errors.ErrUnsupported)
		}
		pageCache, err := newPageCache(readerAt, fileInfo.Size(), p.pageCacheSize)
		if err != nil {
			return nil, err
		}
		p.reader.rs = pageCache
	}
	p.closer = file

	ok = true
	return p, nil
}

// NewParser returns a Parser that reads the tile called name from rs, which
// holds size bytes. Closing the Parser does not close rs.
func NewParser(name string, rs io.ReadSeeker, size int64, options ...ParserOption) (*Parser, error) {
	return newParser(name, rs, size, options)
}

func newParser(name string, rs io.ReadSeeker, size int64, options []ParserOption) (*Parser, error) {
	p := &Parser{}
	for _, option := range options {
		option(p)
	}
	side := squareSide(size)
	if p.cols == 0 {
		p.cols = side
	}
	if p.rows == 0 {
		p.rows = side
	}
	tile, err := NewTile(name, p.cols, p.rows)
	if err != nil {
		return nil, err
	}
	p.Tile = tile
	p.reader.rs = rs
	return p, nil
}

// Close releases p's source. Subsequent reads from p or its iterators return
// ErrSourceClosed.
func (p *Parser) Close() error {
	if p.reader.rs == nil {
		return ErrSourceClosed
	}
	p.reader.close()
	if p.closer != nil {
		return p.closer.Close()
	}
	return nil
}

// ElevationAt returns the row, column, and elevation of the sample nearest to
// pos.
func (p *Parser) ElevationAt(pos LatLng) (row, col int, elevation Elevation, err error) {
	row, col, index, err := p.Locate(pos)
	if err != nil {
		return 0, 0, Elevation{}, err
	}
	raw, err := p.reader.read(index)
	if err != nil {
		return 0, 0, Elevation{}, err
	}
	return row, col, newElevation(raw), nil
}

// Values returns an iterator over every sample in p. If asFloat is true then
// each Sample's FloatCorners are populated.
func (p *Parser) Values(asFloat bool) *ValueIterator {
	return &ValueIterator{
		parser:  p,
		asFloat: asFloat,
	}
}

// Blocks returns an iterator over blocks of at most width×height samples. If
// asFloat is true then each Block's FloatCorners are populated.
func (p *Parser) Blocks(width, height int, asFloat bool) (*BlockIterator, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("block %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &BlockIterator{
		parser:  p,
		width:   width,
		height:  height,
		asFloat: asFloat,
	}, nil
}
