// Command hgt inspects SRTM .hgt elevation tiles.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/twpayne/go-hgt"
	"github.com/twpayne/go-hgt/internal/config"
	"github.com/twpayne/go-hgt/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"HGT_CONFIG" description:"Path to configuration file"`

	Info      infoCommand      `command:"info"      description:"Print a tile's dimensions and corners"`
	Elevation elevationCommand `command:"elevation" description:"Look up elevations in a directory of tiles"`
	Dump      dumpCommand      `command:"dump"      description:"Print a tile's samples or blocks"`
	Export    exportCommand    `command:"export"    description:"Write a tile as a 16-bit grayscale TIFF"`
}

var opts Options

// loadConfig returns the configuration file's contents, or the defaults if
// there is no configuration file.
func (o *Options) loadConfig() (*config.Config, error) {
	if o.ConfigFile == "" {
		return config.Default(), nil
	}
	return config.Load(o.ConfigFile)
}

// A tileArgs names a single tile file on the command line.
type tileArgs struct {
	File string `positional-arg-name:"FILE"`
}

// openTile opens the tile at path. Non-zero cols and rows override the
// configuration file.
func openTile(path string, cols, rows int) (*hgt.Parser, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}
	if cols == 0 {
		cols = cfg.Cols
	}
	if rows == 0 {
		rows = cfg.Rows
	}

	var parserOptions []hgt.ParserOption
	if cols != 0 || rows != 0 {
		parserOptions = append(parserOptions, hgt.WithDimensions(cols, rows))
	}
	if cfg.PageCacheSize > 0 {
		parserOptions = append(parserOptions, hgt.WithPageCacheSize(cfg.PageCacheSize))
	}

	p, err := hgt.Open(os.DirFS(filepath.Dir(path)), filepath.Base(path), parserOptions...)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("tile", p.Name()).
		Int("cols", p.Cols()).
		Int("rows", p.Rows()).
		Msg("open")
	return p, nil
}

func main() {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		opts.Logger.Setup()
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		switch {
		case errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp:
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		case errors.As(err, &flagsErr):
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		default:
			log.Fatal().Err(err).Send()
		}
	}
}
