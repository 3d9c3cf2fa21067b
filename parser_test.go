package hgt

import (
	"bytes"
	"io/fs"
	"os"
	"testing"
	"testing/fstest"

	"github.com/alecthomas/assert/v2"
)

func TestOpen(t *testing.T) {
	p := openSRTM3TestTile(t)
	assert.Equal(t, "N00E010.hgt", p.Name())
	assert.Equal(t, 1201, p.Cols())
	assert.Equal(t, 1201, p.Rows())
	assert.Equal(t, 1442401, p.TotalSamples())
}

func TestOpen_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"N00E010.hgt":     &fstest.MapFile{Data: newTestTileData(11, 11, testSample)},
		"elevation.hgt":   &fstest.MapFile{Data: newTestTileData(11, 11, testSample)},
		"N01E010.hgt":     &fstest.MapFile{Data: []byte{0, 0}},
		"dir/N02E010.hgt": &fstest.MapFile{Data: newTestTileData(3, 3, testSample)},
	}

	_, err := Open(fsys, "N05E010.hgt")
	assert.IsError(t, err, ErrNotFound)
	assert.IsError(t, err, fs.ErrNotExist)

	_, err = Open(os.DirFS(t.TempDir()), "N00E010.hgt")
	assert.IsError(t, err, ErrNotFound)

	_, err = Open(fsys, "elevation.hgt")
	assert.IsError(t, err, ErrFormat)

	_, err = Open(fsys, "N01E010.hgt")
	assert.IsError(t, err, ErrInvalidDimensions)

	p, err := Open(fsys, "dir/N02E010.hgt")
	assert.NoError(t, err)
	assert.Equal(t, "N02E010.hgt", p.Name())
	assert.Equal(t, 9, p.TotalSamples())
	assert.NoError(t, p.Close())
}

func TestOpen_WithDimensions(t *testing.T) {
	fsys := fstest.MapFS{
		"S01W002.hgt": &fstest.MapFile{Data: newTestTileData(7, 5, testSample)},
	}
	p, err := Open(fsys, "S01W002.hgt", WithDimensions(7, 5))
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, p.Close())
	}()
	assert.Equal(t, 7, p.Cols())
	assert.Equal(t, 5, p.Rows())
	assert.Equal(t, 35, p.TotalSamples())

	for row := range 5 {
		for col := range 7 {
			actualRow, actualCol, elevation, err := p.ElevationAt(p.CellCenter(row, col))
			assert.NoError(t, err)
			assert.Equal(t, row, actualRow)
			assert.Equal(t, col, actualCol)
			assert.Equal(t, Elevation{Value: testSample(row, col), Valid: true}, elevation)
		}
	}
}

func TestNewParser(t *testing.T) {
	// The source is only read on demand, so the dimensions of a large tile
	// can be checked without its data.
	p, err := NewParser("N00E010.hgt", bytes.NewReader(nil), 2*SRTM1Side*SRTM1Side)
	assert.NoError(t, err)
	assert.Equal(t, 12967201, p.TotalSamples())
	assert.Equal(t, "1/3600", p.CellWidth().RatString())

	_, _, _, err = p.ElevationAt(NewLatLng(0.5, 10.5))
	assert.Error(t, err)

	_, err = NewParser("N00E010.hgt", bytes.NewReader(nil), 2*SRTM1Side*SRTM1Side, WithDimensions(SRTM3Side, SRTM3Side))
	assert.NoError(t, err)

	_, err = NewParser("X00E010.hgt", bytes.NewReader(nil), 8)
	assert.IsError(t, err, ErrFormat)
}

func TestParser_ElevationAt(t *testing.T) {
	p := openSRTM3TestTile(t)
	for _, tc := range []struct {
		name        string
		pos         LatLng
		expectedRow int
		expectedCol int
		expectedErr error
	}{
		{name: "center", pos: NewLatLng(0.56, 10.86), expectedRow: 528, expectedCol: 1032},
		{name: "south_west", pos: NewLatLng(0.1, 10.1), expectedRow: 1080, expectedCol: 120},
		{name: "north_east", pos: NewLatLng(1.0001, 11.0001), expectedRow: 0, expectedCol: 1200},
		{name: "bottom_left", pos: NewLatLng(0, 10), expectedRow: 1200, expectedCol: 0},
		{name: "outside", pos: NewLatLng(3.0, 12), expectedErr: ErrNotInTile},
	} {
		t.Run(tc.name, func(t *testing.T) {
			row, col, elevation, err := p.ElevationAt(tc.pos)
			if tc.expectedErr != nil {
				assert.IsError(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedRow, row)
			assert.Equal(t, tc.expectedCol, col)
			assert.Equal(t, Elevation{Value: testSample(row, col), Valid: true}, elevation)
		})
	}
}

func TestParser_ElevationAtVoid(t *testing.T) {
	fsys := fstest.MapFS{
		"N00E010.hgt": &fstest.MapFile{
			Data: newTestTileData(SRTM3Side, SRTM3Side, func(row, col int) int16 {
				if row == 0 && col == 1200 {
					return VoidValue
				}
				return testSample(row, col)
			}),
		},
	}
	p, err := Open(fsys, "N00E010.hgt")
	assert.NoError(t, err)
	defer p.Close()

	row, col, elevation, err := p.ElevationAt(NewLatLng(1.0001, 11.0001))
	assert.NoError(t, err)
	assert.Equal(t, 0, row)
	assert.Equal(t, 1200, col)
	assert.Equal(t, Elevation{}, elevation)
	assert.False(t, elevation.Valid)

	_, _, elevation, err = p.ElevationAt(NewLatLng(0.56, 10.86))
	assert.NoError(t, err)
	assert.True(t, elevation.Valid)
}

func TestParser_Close(t *testing.T) {
	p, err := Open(newSRTM3TestFS(), "N00E010.hgt")
	assert.NoError(t, err)

	values := p.Values(false)
	assert.True(t, values.Next())
	blocks, err := p.Blocks(50, 50, false)
	assert.NoError(t, err)
	assert.True(t, blocks.Next())

	assert.NoError(t, p.Close())
	assert.IsError(t, p.Close(), ErrSourceClosed)

	_, _, _, err = p.ElevationAt(NewLatLng(0.56, 10.86))
	assert.IsError(t, err, ErrSourceClosed)

	assert.False(t, values.Next())
	assert.IsError(t, values.Err(), ErrSourceClosed)
	assert.False(t, values.Next())

	assert.False(t, blocks.Next())
	assert.IsError(t, blocks.Err(), ErrSourceClosed)

	freshValues := p.Values(true)
	assert.False(t, freshValues.Next())
	assert.IsError(t, freshValues.Err(), ErrSourceClosed)

	// Geometry does not need the source.
	corners, err := p.Shift(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, "[(2399/2400, 23999/2400) (2401/2400, 23999/2400) (2401/2400, 24001/2400) (2399/2400, 24001/2400)]", corners.String())
	assert.True(t, p.Contains(NewLatLng(0.5, 10.5)))
}

func TestParser_PageCache(t *testing.T) {
	uncached := openSRTM3TestTile(t)
	cached := openSRTM3TestTile(t, WithPageCacheSize(256<<10))

	for _, pos := range []LatLng{
		NewLatLng(0.56, 10.86),
		NewLatLng(0.1, 10.1),
		NewLatLng(1.0001, 11.0001),
		NewLatLng(0, 10),
		NewLatLng(0.99, 10.01),
	} {
		expectedRow, expectedCol, expectedElevation, err := uncached.ElevationAt(pos)
		assert.NoError(t, err)
		actualRow, actualCol, actualElevation, err := cached.ElevationAt(pos)
		assert.NoError(t, err)
		assert.Equal(t, expectedRow, actualRow)
		assert.Equal(t, expectedCol, actualCol)
		assert.Equal(t, expectedElevation, actualElevation)
	}

	expectedBlocks, err := uncached.Blocks(100, 100, false)
	assert.NoError(t, err)
	actualBlocks, err := cached.Blocks(100, 100, false)
	assert.NoError(t, err)
	for expectedBlocks.Next() {
		assert.True(t, actualBlocks.Next())
		assert.Equal(t, expectedBlocks.Block().Values, actualBlocks.Block().Values)
	}
	assert.NoError(t, expectedBlocks.Err())
	assert.False(t, actualBlocks.Next())
	assert.NoError(t, actualBlocks.Err())
}

func TestParser_Blocks_InvalidSize(t *testing.T) {
	p := openSRTM3TestTile(t)
	for _, size := range [][2]int{{0, 50}, {50, 0}, {-1, -1}} {
		_, err := p.Blocks(size[0], size[1], false)
		assert.IsError(t, err, ErrInvalidDimensions)
	}
}

func BenchmarkParser_ElevationAt(b *testing.B) {
	p, err := Open(newSRTM3TestFS(), "N00E010.hgt")
	assert.NoError(b, err)
	defer p.Close()
	pos := NewLatLng(0.56, 10.86)
	b.ResetTimer()
	for range b.N {
		_, _, _, err := p.ElevationAt(pos)
		assert.NoError(b, err)
	}
}
