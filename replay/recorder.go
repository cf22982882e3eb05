package replay

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/lixenwraith/tank-pusher/config"
	"github.com/lixenwraith/tank-pusher/engine"
)

// Recorder is a frame observer that appends entries to a .jsonl.zst file
// Write errors are latched and returned by Close; the frame loop never sees them
type Recorder struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer

	id     string
	frames int64
	err    error
}

// Create opens path and writes the header for sc
func Create(path string, sc config.Scene) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	r := &Recorder{
		f:   f,
		enc: enc,
		w:   bufio.NewWriterSize(enc, 64*1024),
		id:  uuid.NewString(),
	}
	if err := r.writeLine(Header{
		Version:   FormatVersion,
		SessionID: r.id,
		Started:   time.Now().UTC(),
		Scene:     sc,
	}); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// SessionID returns the id written to the header
func (r *Recorder) SessionID() string {
	return r.id
}

// Frames returns the number of entries written
func (r *Recorder) Frames() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *Recorder) OnFrame(f engine.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil || r.w == nil {
		return
	}
	if err := r.writeLine(entryFromFrame(f)); err != nil {
		r.err = err
		return
	}
	r.frames++
}

func (r *Recorder) writeLine(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}

// Close flushes and closes the file, returning the first write error if any
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.err
	if r.w != nil {
		if ferr := r.w.Flush(); err == nil {
			err = ferr
		}
		r.w = nil
	}
	if r.enc != nil {
		if cerr := r.enc.Close(); err == nil {
			err = cerr
		}
		r.enc = nil
	}
	if r.f != nil {
		if cerr := r.f.Close(); err == nil {
			err = cerr
		}
		r.f = nil
	}
	return err
}
