package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Reader iterates the entries of a recording
type Reader struct {
	Header Header

	f    *os.File
	dec  *zstd.Decoder
	sc   *bufio.Scanner
	line int
}

// Open reads and checks the header of the recording at path
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	r := &Reader{f: f, dec: dec, sc: bufio.NewScanner(dec)}
	r.sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	if !r.sc.Scan() {
		err := r.sc.Err()
		_ = r.Close()
		if err != nil {
			return nil, err
		}
		return nil, ErrNoHeader
	}
	r.line = 1
	if err := json.Unmarshal(r.sc.Bytes(), &r.Header); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("header: %w", err)
	}
	if r.Header.Version != FormatVersion {
		_ = r.Close()
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, r.Header.Version)
	}
	return r, nil
}

// Next returns the next entry, io.EOF after the last one
func (r *Reader) Next() (Entry, error) {
	var e Entry
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return e, err
		}
		return e, io.EOF
	}
	r.line++
	if err := json.Unmarshal(r.sc.Bytes(), &e); err != nil {
		return e, fmt.Errorf("line %d: %w", r.line, err)
	}
	return e, nil
}

func (r *Reader) Close() error {
	if r.dec != nil {
		r.dec.Close()
		r.dec = nil
	}
	if r.f != nil {
		err := r.f.Close()
		r.f = nil
		return err
	}
	return nil
}
