package main

import (
	"fmt"
	"io"
	"os"

	"github.com/twpayne/go-hgt"
)

type infoCommand struct {
	Cols int      `long:"cols" description:"Samples per row, derived from the file size if unset"`
	Rows int      `long:"rows" description:"Samples per column, derived from the file size if unset"`
	Args tileArgs `positional-args:"yes" required:"yes"`
}

func (c *infoCommand) Execute([]string) error {
	p, err := openTile(c.Args.File, c.Cols, c.Rows)
	if err != nil {
		return err
	}
	defer p.Close()
	return writeInfo(os.Stdout, p.Tile)
}

// writeInfo writes t's dimensions and geometry to w.
func writeInfo(w io.Writer, t *hgt.Tile) error {
	_, err := fmt.Fprintf(w, ""+
		"name: %s\n"+
		"cols: %d\n"+
		"rows: %d\n"+
		"samples: %d\n"+
		"cell: %s x %s\n"+
		"area: %s x %s\n"+
		"bottom left center: %s\n"+
		"corners: %s\n"+
		"corners (float): %s\n",
		t.Name(),
		t.Cols(),
		t.Rows(),
		t.TotalSamples(),
		t.CellWidth().RatString(), t.CellHeight().RatString(),
		t.AreaWidth().RatString(), t.AreaHeight().RatString(),
		t.BottomLeftCenter(),
		t.Corners(),
		formatFloatCorners(t.Corners().Float64()),
	)
	return err
}
