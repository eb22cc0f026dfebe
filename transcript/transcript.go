// Package transcript records request/response exchanges as
// length-prefixed msgpack frames for offline inspection and replay.
//
// A transcript file is a sequence of frames, each a 4-byte big-endian
// payload length followed by one msgpack-encoded Record. Frames are
// appended atomically under a mutex, so a single Recorder is safe to
// share across concurrent batch items.
package transcript

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Frame size constants.
const (
	// MaxFrameSize is the maximum frame size (16 MiB), including length prefix.
	MaxFrameSize = 16 * 1024 * 1024
	// MaxPayloadSize is the maximum payload size (MaxFrameSize - 4 bytes).
	MaxPayloadSize = MaxFrameSize - LengthPrefixSize
	// LengthPrefixSize is the size of the length prefix in bytes.
	LengthPrefixSize = 4
)

// Record is one request/response exchange with the service.
type Record struct {
	// ID is the request id attached to the HTTP call.
	ID string `msgpack:"id"`
	// Endpoint is the operation name (e.g. "generate").
	Endpoint string `msgpack:"endpoint"`
	// Ts is the exchange timestamp in RFC 3339 UTC format.
	Ts string `msgpack:"ts"`
	// Status is the HTTP status code, 0 if the call never completed.
	Status int `msgpack:"status"`
	// Request is the raw JSON request body.
	Request []byte `msgpack:"request"`
	// Response is the raw JSON response body, if any.
	Response []byte `msgpack:"response,omitempty"`
	// Error is the failure description, empty on success.
	Error string `msgpack:"error,omitempty"`
}

// Now returns the current time formatted for Record.Ts.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Recorder appends records to a transcript stream.
type Recorder struct {
	mu sync.Mutex
	w  io.WriteCloser
}

// NewRecorder opens (or creates) the transcript file at path in
// append mode.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("transcript: open %s: %w", path, err)
	}
	return &Recorder{w: f}, nil
}

// NewRecorderWriter wraps an existing writer. Useful for tests.
func NewRecorderWriter(w io.WriteCloser) *Recorder {
	return &Recorder{w: w}
}

// Append writes one record as a length-prefixed msgpack frame.
func (r *Recorder) Append(rec *Record) error {
	payload, err := msgpack.Marshal(rec)
	if err != nil {
		return fmt.Errorf("transcript: encode record: %w", err)
	}
	if len(payload) > MaxPayloadSize {
		return fmt.Errorf("transcript: record size %d exceeds maximum %d", len(payload), MaxPayloadSize)
	}

	var lengthBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(payload)))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.w.Write(lengthBuf[:]); err != nil {
		return fmt.Errorf("transcript: write frame: %w", err)
	}
	if _, err := r.w.Write(payload); err != nil {
		return fmt.Errorf("transcript: write frame: %w", err)
	}
	return nil
}

// Close closes the underlying writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w.Close()
}

// Reader decodes records from a transcript stream.
type Reader struct {
	r io.Reader
}

// NewReader creates a transcript reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next reads the next record from the stream.
//
// Errors:
//   - io.EOF: stream ended cleanly (no more records)
//   - otherwise: a truncated frame, an oversized frame, or a msgpack
//     decoding failure
func (d *Reader) Next() (*Record, error) {
	var lengthBuf [LengthPrefixSize]byte
	if _, err := io.ReadFull(d.r, lengthBuf[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("transcript: truncated length prefix: %w", err)
	}

	payloadSize := binary.BigEndian.Uint32(lengthBuf[:])
	if payloadSize > MaxPayloadSize {
		return nil, fmt.Errorf("transcript: payload size %d exceeds maximum %d", payloadSize, MaxPayloadSize)
	}

	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(d.r, payload); err != nil {
		return nil, fmt.Errorf("transcript: truncated payload: %w", err)
	}

	var rec Record
	if err := msgpack.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("transcript: decode record: %w", err)
	}
	return &rec, nil
}
