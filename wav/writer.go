// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/orcaman/writerseeker"

	"github.com/ik5/wavstream/utils"
)

// writeChunkSamples bounds the transient buffers used when encoding
// sample slices, so large writes never stage the whole slice at once.
const writeChunkSamples = 2048

// Writer encodes 16-bit PCM samples into a WAV stream.
//
// The header depends on the final sample count, so a zero placeholder
// is written first and patched when the Writer is closed. Close must be
// reached on every exit path; a Writer that is never closed leaves the
// stream with an invalid header. A Writer owns its sink exclusively and
// is not safe for concurrent use.
type Writer struct {
	ws          io.WriteSeeker
	out         io.Writer // final sink in buffered mode, nil otherwise
	sampleRate  int
	numChannels int
	numSamples  uint32
	buf         []byte
	tmp         []int16
	closed      bool
}

// NewWriter starts a 16-bit PCM WAV stream on ws. The sample rate and
// channel count are validated immediately, and the 44-byte placeholder
// header is written before NewWriter returns.
func NewWriter(ws io.WriteSeeker, sampleRate, numChannels int) (*Writer, error) {
	w := &Writer{
		ws:          ws,
		sampleRate:  sampleRate,
		numChannels: numChannels,
	}
	if err := w.params(0).Validate(); err != nil {
		return nil, err
	}

	// The real header needs the total sample count, which is unknown
	// until Close.
	placeholder := make([]byte, HeaderSize)
	if err := writeFull(ws, placeholder); err != nil {
		return nil, err
	}

	return w, nil
}

// NewBufferedWriter is NewWriter for sinks that cannot seek. The whole
// file is staged in memory and streamed out to w when the Writer is
// closed, so the header patch never needs a seek on w itself.
func NewBufferedWriter(w io.Writer, sampleRate, numChannels int) (*Writer, error) {
	staged, err := NewWriter(&writerseeker.WriterSeeker{}, sampleRate, numChannels)
	if err != nil {
		return nil, err
	}
	staged.out = w
	return staged, nil
}

func (w *Writer) params(numSamples uint32) Params {
	return Params{
		NumChannels:    w.numChannels,
		SampleRate:     w.sampleRate,
		Format:         FormatPCM,
		BytesPerSample: 2,
		NumSamples:     numSamples,
	}
}

// SampleRate of the stream in Hz.
func (w *Writer) SampleRate() int { return w.sampleRate }

// NumChannels count (e.g., 1=mono, 2=stereo).
func (w *Writer) NumChannels() int { return w.numChannels }

// NumSamples is the total interleaved samples written so far.
func (w *Writer) NumSamples() uint32 { return w.numSamples }

// WriteSamples appends interleaved little-endian samples to the payload.
// The prospective total is validated before any byte is written, so a
// rejected write (for example one that leaves the channels uneven, or
// overflows the RIFF size field) leaves the payload exactly as it was.
func (w *Writer) WriteSamples(samples []int16) error {
	if w.closed {
		return ErrWriterClosed
	}

	total := uint64(w.numSamples) + uint64(len(samples))
	if total > math.MaxUint32 {
		return fmt.Errorf("%w: sample count overflows 32 bits", ErrInvalidParams)
	}
	if err := w.params(uint32(total)).Validate(); err != nil {
		return err
	}

	for off := 0; off < len(samples); off += writeChunkSamples {
		end := min(off+writeChunkSamples, len(samples))
		chunk := samples[off:end]

		if len(w.buf) < len(chunk)*2 {
			w.buf = make([]byte, len(chunk)*2)
		}
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(w.buf[i*2:i*2+2], uint16(s))
		}
		if err := writeFull(w.ws, w.buf[:len(chunk)*2]); err != nil {
			return err
		}
	}

	w.numSamples = uint32(total)
	return nil
}

// WriteFloatSamples converts samples to int16 and appends them. Values
// are rounded half away from zero and saturate at the int16 bounds, so
// the usable input range mirrors [-32768, 32767].
func (w *Writer) WriteFloatSamples(samples []float32) error {
	if w.closed {
		return ErrWriterClosed
	}
	if w.tmp == nil {
		w.tmp = make([]int16, writeChunkSamples)
	}

	for off := 0; off < len(samples); off += writeChunkSamples {
		end := min(off+writeChunkSamples, len(samples))
		chunk := samples[off:end]

		utils.FloatS16BufToInt16(chunk, w.tmp[:len(chunk)])
		if err := w.WriteSamples(w.tmp[:len(chunk)]); err != nil {
			return err
		}
	}

	return nil
}

// Close patches the placeholder with the final header, flushes the
// staged file in buffered mode, and closes the sink when it supports
// closing. Closing an already-closed Writer is a no-op, so a deferred
// Close composes with an explicit checked one.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	header, err := EncodeHeader(w.params(w.numSamples))
	if err != nil {
		return err
	}
	if _, err := w.ws.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := writeFull(w.ws, header); err != nil {
		return err
	}

	if w.out != nil {
		staged := w.ws.(*writerseeker.WriterSeeker)
		if _, err := io.Copy(w.out, staged.Reader()); err != nil {
			return fmt.Errorf("%w", err)
		}
		return closeIfCloser(w.out)
	}
	return closeIfCloser(w.ws)
}

func closeIfCloser(v any) error {
	if c, ok := v.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if n != len(p) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortIO, n, len(p))
	}
	return nil
}
