package hgt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/maypok86/otter/v2"
)

const pageSize = 64 << 10 // 64KB.

var errShortRead = errors.New("short read")

// A pageCache is an io.ReadSeeker that serves reads from fixed-size pages of
// an io.ReaderAt, keeping recently used pages in memory.
type pageCache struct {
	r      io.ReaderAt
	size   int64
	offset int64
	pages  *otter.Cache[int64, []byte]
}

// newPageCache returns a new pageCache over the first size bytes of r that
// holds up to cacheSizeBytes of pages.
func newPageCache(r io.ReaderAt, size int64, cacheSizeBytes int) (*pageCache, error) {
	pages, err := otter.New(&otter.Options[int64, []byte]{
		MaximumSize: max(cacheSizeBytes/pageSize, 1),
	})
	if err != nil {
		return nil, err
	}
	return &pageCache{
		r:     r,
		size:  size,
		pages: pages,
	}, nil
}

// Read implements io.Reader.
func (c *pageCache) Read(p []byte) (int, error) {
	if c.offset >= c.size {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && c.offset < c.size {
		pageIndex := c.offset / pageSize
		page, err := c.pages.Get(context.Background(), pageIndex, otter.LoaderFunc[int64, []byte](c.loadPage))
		if err != nil {
			return n, err
		}
		copied := copy(p[n:], page[c.offset-pageIndex*pageSize:])
		n += copied
		c.offset += int64(copied)
	}
	return n, nil
}

// Seek implements io.Seeker.
func (c *pageCache) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += c.offset
	case io.SeekEnd:
		offset += c.size
	default:
		return 0, fmt.Errorf("%d: invalid whence", whence)
	}
	if offset < 0 {
		return 0, fmt.Errorf("%d: negative offset", offset)
	}
	c.offset = offset
	return offset, nil
}

// loadPage reads the page at pageIndex from the underlying reader.
func (c *pageCache) loadPage(ctx context.Context, pageIndex int64) ([]byte, error) {
	offset := pageIndex * pageSize
	page := make([]byte, min(pageSize, c.size-offset))
	switch n, err := c.r.ReadAt(page, offset); {
	case n == len(page):
		return page, nil
	case err != nil:
		return nil, err
	default:
		return nil, errShortRead
	}
}
