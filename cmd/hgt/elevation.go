package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/twpayne/go-hgt"
)

type positionArgs struct {
	Positions []string `positional-arg-name:"LAT LNG" required:"2"`
}

type elevationCommand struct {
	Dir       string       `short:"d" long:"dir" env:"HGT_DIR" description:"Tile directory"`
	CacheSize int          `long:"cache-size" description:"Maximum number of open tiles"`
	Args      positionArgs `positional-args:"yes" required:"yes"`
}

func (c *elevationCommand) Execute([]string) error {
	if len(c.Args.Positions)%2 != 0 {
		return errors.New("positions must be LAT LNG pairs")
	}
	positions := make([]hgt.LatLng, 0, len(c.Args.Positions)/2)
	for i := 0; i < len(c.Args.Positions); i += 2 {
		pos, err := hgt.ParseLatLng(c.Args.Positions[i], c.Args.Positions[i+1])
		if err != nil {
			return err
		}
		positions = append(positions, pos)
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	dir := c.Dir
	if dir == "" {
		dir = cfg.TileDir
	}
	cacheSize := c.CacheSize
	if cacheSize == 0 {
		cacheSize = cfg.CacheSize
	}

	tileSetOptions := []hgt.TileSetOption{
		hgt.WithFS(os.DirFS(dir)),
		hgt.WithCacheSize(cacheSize),
		hgt.WithLogger(log.Logger),
	}
	var parserOptions []hgt.ParserOption
	if cfg.Cols != 0 || cfg.Rows != 0 {
		parserOptions = append(parserOptions, hgt.WithDimensions(cfg.Cols, cfg.Rows))
	}
	if cfg.PageCacheSize > 0 {
		parserOptions = append(parserOptions, hgt.WithPageCacheSize(cfg.PageCacheSize))
	}
	if len(parserOptions) > 0 {
		tileSetOptions = append(tileSetOptions, hgt.WithParserOptions(parserOptions...))
	}

	tileSet, err := hgt.NewTileSet(tileSetOptions...)
	if err != nil {
		return err
	}
	defer tileSet.Close()

	elevations, err := tileSet.Elevations(positions)
	if err != nil {
		return err
	}
	return writeElevations(os.Stdout, c.Args.Positions, elevations)
}

// writeElevations writes one line per position to w. args holds the
// positions as given on the command line.
func writeElevations(w io.Writer, args []string, elevations []hgt.Elevation) error {
	for i, elevation := range elevations {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", args[2*i], args[2*i+1], formatElevation(elevation)); err != nil {
			return err
		}
	}
	return nil
}

func formatElevation(elevation hgt.Elevation) string {
	if !elevation.Valid {
		return "-"
	}
	return strconv.Itoa(int(elevation.Value))
}
