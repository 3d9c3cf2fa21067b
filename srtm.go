package hgt

import (
	"io/fs"
	"slices"
)

// Samples per side of SRTM tiles.
const (
	SRTM1Side = 3601 // One arc-second.
	SRTM3Side = 1201 // Three arc-seconds.
)

// NewSRTM1 returns a TileSet of one arc-second SRTM tiles in fsys.
func NewSRTM1(fsys fs.FS, options ...TileSetOption) (*TileSet, error) {
	return newSRTM(fsys, SRTM1Side, options)
}

// NewSRTM3 returns a TileSet of three arc-second SRTM tiles in fsys.
func NewSRTM3(fsys fs.FS, options ...TileSetOption) (*TileSet, error) {
	return newSRTM(fsys, SRTM3Side, options)
}

func newSRTM(fsys fs.FS, side int, options []TileSetOption) (*TileSet, error) {
	return NewTileSet(slices.Concat(
		[]TileSetOption{
			WithFS(fsys),
			WithParserOptions(WithDimensions(side, side)),
			WithTileFilenameFunc(TileFilename),
		},
		options,
	)...)
}
