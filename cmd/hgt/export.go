package main

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/tiff"

	"github.com/twpayne/go-hgt"
)

type exportCommand struct {
	Cols   int      `long:"cols" description:"Samples per row, derived from the file size if unset"`
	Rows   int      `long:"rows" description:"Samples per column, derived from the file size if unset"`
	Output string   `short:"o" long:"output" value-name:"FILE" description:"Output TIFF file" required:"yes"`
	Args   tileArgs `positional-args:"yes" required:"yes"`
}

func (c *exportCommand) Execute([]string) (err error) {
	p, err := openTile(c.Args.File, c.Cols, c.Rows)
	if err != nil {
		return err
	}
	defer p.Close()

	file, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	w := bufio.NewWriter(file)
	if err := exportTIFF(w, p); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	log.Info().
		Str("tile", p.Name()).
		Str("output", c.Output).
		Msg("export")
	return nil
}

// exportTIFF writes p to w as a 16-bit grayscale TIFF. Each pixel is the raw
// sample offset so that voids are black.
func exportTIFF(w io.Writer, p *hgt.Parser) error {
	img := image.NewGray16(image.Rect(0, 0, p.Cols(), p.Rows()))
	it, err := p.Blocks(p.Cols(), 1, false)
	if err != nil {
		return err
	}
	for it.Next() {
		block := it.Block()
		for col, value := range block.Values[0] {
			img.SetGray16(block.Col+col, block.Row, color.Gray16{Y: uint16(int32(value) - hgt.VoidValue)})
		}
	}
	if err := it.Err(); err != nil {
		return err
	}
	return tiff.Encode(w, img, &tiff.Options{
		Compression: tiff.Deflate,
	})
}
