package hgt

import (
	"encoding/binary"
	"io"
)

const bytesPerSample = 2

// A sampleReader reads big-endian 16-bit samples from a seekable source. Every
// read seeks first, so reads are independent of each other.
type sampleReader struct {
	rs  io.ReadSeeker
	buf []byte
}

// read returns the raw sample at index.
func (r *sampleReader) read(index int) (int16, error) {
	var sample [1]int16
	if err := r.readSpan(index, sample[:]); err != nil {
		return 0, err
	}
	return sample[0], nil
}

// readSpan reads len(dst) consecutive raw samples starting at index into
// dst.
func (r *sampleReader) readSpan(index int, dst []int16) error {
	if r.rs == nil {
		return ErrSourceClosed
	}
	n := len(dst) * bytesPerSample
	if cap(r.buf) < n {
		r.buf = make([]byte, n)
	}
	buf := r.buf[:n]
	if _, err := r.rs.Seek(int64(index)*bytesPerSample, io.SeekStart); err != nil {
		return err
	}
	if _, err := io.ReadFull(r.rs, buf); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = int16(binary.BigEndian.Uint16(buf[i*bytesPerSample:]))
	}
	return nil
}

// close detaches r from its source.
func (r *sampleReader) close() {
	r.rs = nil
	r.buf = nil
}
