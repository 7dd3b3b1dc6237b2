package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrClosed is returned when writing to a closed recorder
var ErrClosed = errors.New("trace: recorder closed")

// Recorder is a game.Renderer that streams every frame as msgpack
type Recorder struct {
	DrawList

	buf    *bufio.Writer
	enc    *msgpack.Encoder
	closer io.Closer
	frames int
	err    error
	closed bool
}

// NewRecorder writes frames to w. If w is an io.Closer it is closed by Close.
func NewRecorder(w io.Writer) *Recorder {
	buf := bufio.NewWriter(w)
	r := &Recorder{
		buf: buf,
		enc: msgpack.NewEncoder(buf),
	}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// EndFrame implements game.Renderer. The first write error is kept and
// reported by Err and Close; later frames are dropped.
func (r *Recorder) EndFrame() {
	r.DrawList.EndFrame()
	if r.closed {
		r.setErr(ErrClosed)
		return
	}
	if r.err != nil {
		return
	}
	if err := r.enc.Encode(r.Last()); err != nil {
		r.setErr(fmt.Errorf("trace: encode frame %d: %w", r.Last().Seq, err))
		return
	}
	r.frames++
}

func (r *Recorder) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Frames returns the number of frames written
func (r *Recorder) Frames() int {
	return r.frames
}

// Err returns the first error encountered while recording
func (r *Recorder) Err() error {
	return r.err
}

// Close flushes buffered frames and closes the underlying writer
func (r *Recorder) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	if err := r.buf.Flush(); err != nil {
		r.setErr(fmt.Errorf("trace: flush: %w", err))
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil {
			r.setErr(fmt.Errorf("trace: close: %w", err))
		}
	}
	return r.err
}

// Reader decodes frames written by a Recorder
type Reader struct {
	dec *msgpack.Decoder
}

// NewReader reads frames from r
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: msgpack.NewDecoder(bufio.NewReader(r))}
}

// Next returns the next frame, or io.EOF when the trace is exhausted
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("trace: decode frame: %w", err)
	}
	return f, nil
}

// ReadAll decodes every frame in r
func ReadAll(r io.Reader) ([]Frame, error) {
	tr := NewReader(r)
	var frames []Frame
	for {
		f, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}
