package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/twpayne/go-hgt"
)

type dumpCommand struct {
	Cols  int      `long:"cols" description:"Samples per row, derived from the file size if unset"`
	Rows  int      `long:"rows" description:"Samples per column, derived from the file size if unset"`
	Block string   `short:"b" long:"block" value-name:"WxH" description:"Dump blocks of up to W×H samples"`
	Float bool     `short:"f" long:"float" description:"Print corners as floating point numbers"`
	Args  tileArgs `positional-args:"yes" required:"yes"`
}

func (c *dumpCommand) Execute([]string) error {
	var width, height int
	if c.Block != "" {
		var err error
		if width, height, err = parseBlockSize(c.Block); err != nil {
			return err
		}
	}

	p, err := openTile(c.Args.File, c.Cols, c.Rows)
	if err != nil {
		return err
	}
	defer p.Close()

	w := bufio.NewWriter(os.Stdout)
	if c.Block != "" {
		err = dumpBlocks(w, p, width, height, c.Float)
	} else {
		err = dumpValues(w, p, c.Float)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}

// parseBlockSize parses a block size of the form WxH.
func parseBlockSize(s string) (width, height int, err error) {
	if _, err := fmt.Sscanf(s, "%dx%d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("%s: invalid block size: %w", s, err)
	}
	return width, height, nil
}

// dumpValues writes one line per sample to w.
func dumpValues(w io.Writer, p *hgt.Parser, asFloat bool) error {
	it := p.Values(asFloat)
	for it.Next() {
		sample := it.Sample()
		if _, err := fmt.Fprintf(w, "%d %d %d %s %s\n",
			sample.Row, sample.Col, sample.Index,
			formatElevation(sample.Elevation),
			formatCorners(sample.Corners, sample.FloatCorners, asFloat),
		); err != nil {
			return err
		}
	}
	return it.Err()
}

// dumpBlocks writes each block to w as a header line followed by one line
// of raw values per row.
func dumpBlocks(w io.Writer, p *hgt.Parser, width, height int, asFloat bool) error {
	it, err := p.Blocks(width, height, asFloat)
	if err != nil {
		return err
	}
	for it.Next() {
		block := it.Block()
		if _, err := fmt.Fprintf(w, "block %d %d %d %dx%d %s\n",
			block.Row, block.Col, block.Index,
			len(block.Values[0]), len(block.Values),
			formatCorners(block.Corners, block.FloatCorners, asFloat),
		); err != nil {
			return err
		}
		for _, values := range block.Values {
			fields := make([]string, len(values))
			for i, value := range values {
				fields[i] = strconv.Itoa(int(value))
			}
			if _, err := io.WriteString(w, strings.Join(fields, " ")+"\n"); err != nil {
				return err
			}
		}
	}
	return it.Err()
}

func formatCorners(corners hgt.Corners, floatCorners hgt.FloatCorners, asFloat bool) string {
	if asFloat {
		return formatFloatCorners(floatCorners)
	}
	return corners.String()
}

func formatFloatCorners(floatCorners hgt.FloatCorners) string {
	ss := make([]string, len(floatCorners))
	for i, point := range floatCorners {
		ss[i] = "(" + strconv.FormatFloat(point.Lat, 'f', -1, 64) + ", " + strconv.FormatFloat(point.Lng, 'f', -1, 64) + ")"
	}
	return "[" + strings.Join(ss, " ") + "]"
}
