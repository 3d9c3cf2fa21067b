package hgt

import (
	"errors"
	"io/fs"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	missingTileCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hgt_missing_tile_cache_hits_total",
		Help: "The total number of hits on the missing tile cache",
	})
	missingTileCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hgt_missing_tile_cache_misses_total",
		Help: "The total number of misses on the missing tile cache",
	})
	tileCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hgt_tile_cache_hits_total",
		Help: "The total number of hits on the open tile cache",
	})
	tileCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hgt_tile_cache_misses_total",
		Help: "The total number of misses on the open tile cache",
	})
	tileCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hgt_tile_cache_evictions_total",
		Help: "The total number of evictions from the open tile cache",
	})
)

// A TileFilenameFunc returns the tile filename for a tile coordinate.
type TileFilenameFunc func(TileCoord) string

// A TileSet looks up elevations across a directory of HGT tiles, keeping
// recently used tiles open.
type TileSet struct {
	mutex            sync.Mutex
	fsys             fs.FS
	tileFilenameFunc TileFilenameFunc
	missingTiles     map[TileCoord]struct{}
	parserOptions    []ParserOption
	cacheSize        int
	logger           zerolog.Logger
	parserCache      *lru.Cache[TileCoord, *Parser]
}

// A TileSetOption sets an option on a TileSet.
type TileSetOption func(*TileSet)

// NewTileSet returns a new TileSet with the given options.
func NewTileSet(options ...TileSetOption) (*TileSet, error) {
	s := &TileSet{
		tileFilenameFunc: TileFilename,
		missingTiles:     make(map[TileCoord]struct{}),
		cacheSize:        16,
		logger:           zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	if s.fsys == nil {
		return nil, errors.New("no filesystem")
	}

	var err error
	s.parserCache, err = lru.NewWithEvict(s.cacheSize, func(tileCoord TileCoord, parser *Parser) {
		s.logger.Debug().Str("tile", parser.Name()).Msg("close")
		if err := parser.Close(); err != nil {
			s.logger.Warn().Err(err).Str("tile", parser.Name()).Msg("close")
		}
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// WithCacheSize sets the maximum number of open tiles.
func WithCacheSize(cacheSize int) TileSetOption {
	return func(s *TileSet) {
		s.cacheSize = cacheSize
	}
}

func WithFS(fsys fs.FS) TileSetOption {
	return func(s *TileSet) {
		s.fsys = fsys
	}
}

func WithLogger(logger zerolog.Logger) TileSetOption {
	return func(s *TileSet) {
		s.logger = logger
	}
}

func WithParserOptions(parserOptions ...ParserOption) TileSetOption {
	return func(s *TileSet) {
		s.parserOptions = parserOptions
	}
}

func WithTileFilenameFunc(tileFilenameFunc TileFilenameFunc) TileSetOption {
	return func(s *TileSet) {
		s.tileFilenameFunc = tileFilenameFunc
	}
}

// Elevations returns the elevations at positions. Positions in missing tiles
// have invalid elevations.
func (s *TileSet) Elevations(positions []LatLng) ([]Elevation, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	elevations := make([]Elevation, len(positions))

	// Group indexes by tile coord.
	indexesByTileCoord := make(map[TileCoord][]int)
	for index, pos := range positions {
		if !pos.valid() {
			continue
		}
		tileCoord := TileCoordOf(pos)
		indexesByTileCoord[tileCoord] = append(indexesByTileCoord[tileCoord], index)
	}

	// Populate elevations one tile at a time.
	for tileCoord, indexes := range indexesByTileCoord {
		parser, err := s.getParserCached(tileCoord)
		if err != nil {
			return nil, err
		}
		if parser == nil {
			continue
		}
		for _, index := range indexes {
			switch _, _, elevation, err := parser.ElevationAt(positions[index]); {
			case errors.Is(err, ErrNotInTile):
			case err != nil:
				return nil, err
			default:
				elevations[index] = elevation
			}
		}
	}

	return elevations, nil
}

// ElevationsLonLat returns the elevations at coords, which are [lon, lat]
// pairs. Missing elevations are NaN.
func (s *TileSet) ElevationsLonLat(coords [][]float64) ([]float64, error) {
	positions := make([]LatLng, len(coords))
	for i, coord := range coords {
		positions[i] = NewLatLng(coord[1], coord[0])
	}
	elevations, err := s.Elevations(positions)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(elevations))
	for i, elevation := range elevations {
		result[i] = elevation.Float64()
	}
	return result, nil
}

// Close closes all open tiles.
func (s *TileSet) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.parserCache.Purge()
	return nil
}

// getParser opens the tile at tileCoord. It returns nil if the tile does not
// exist.
func (s *TileSet) getParser(tileCoord TileCoord) (*Parser, error) {
	filename := s.tileFilenameFunc(tileCoord)
	switch parser, err := Open(s.fsys, filename, s.parserOptions...); {
	case errors.Is(err, ErrNotFound):
		s.missingTiles[tileCoord] = struct{}{}
		missingTileCacheMisses.Inc()
		s.logger.Debug().Str("tile", filename).Msg("missing")
		return nil, nil
	case err != nil:
		return nil, err
	default:
		s.logger.Debug().Str("tile", filename).Int("cols", parser.Cols()).Int("rows", parser.Rows()).Msg("open")
		return parser, nil
	}
}

// getParserCached returns the open tile at tileCoord, using the cache if
// possible. s.mutex must be held.
func (s *TileSet) getParserCached(tileCoord TileCoord) (*Parser, error) {
	if _, ok := s.missingTiles[tileCoord]; ok {
		missingTileCacheHits.Inc()
		return nil, nil
	}

	if parser, ok := s.parserCache.Get(tileCoord); ok {
		tileCacheHits.Inc()
		return parser, nil
	}

	tileCacheMisses.Inc()

	parser, err := s.getParser(tileCoord)
	if err != nil || parser == nil {
		return nil, err
	}

	if eviction := s.parserCache.Add(tileCoord, parser); eviction {
		tileCacheEvictions.Inc()
	}

	return parser, nil
}
