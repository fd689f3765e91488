// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory stream fakes and deterministic
// sample generators for testing WAV readers and writers without
// touching the filesystem.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// Buffer is an in-memory byte stream implementing the read, write and
// seek contracts the wav package needs, so tests can stand in for
// files. It records how many times it was closed.
type Buffer struct {
	data   []byte
	off    int64
	Closes int
}

// NewBuffer returns a Buffer positioned at the start of data. The data
// is copied, so the caller's slice stays untouched.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), data...)}
}

// Bytes returns the current contents of the buffer.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Read(p []byte) (int, error) {
	if b.off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.off:])
	b.off += int64(n)
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	if need := b.off + int64(len(p)); need > int64(len(b.data)) {
		grown := make([]byte, need)
		copy(grown, b.data)
		b.data = grown
	}
	n := copy(b.data[b.off:], p)
	b.off += int64(n)
	return n, nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = b.off + offset
	case io.SeekEnd:
		next = int64(len(b.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if next < 0 {
		return 0, errors.New("negative position")
	}
	b.off = next
	return next, nil
}

func (b *Buffer) Close() error {
	b.Closes++
	return nil
}

// FailingWriter accepts up to Limit bytes and fails every write after
// that, for exercising sink error paths.
type FailingWriter struct {
	Limit int
	n     int
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.Limit {
		allowed := max(w.Limit-w.n, 0)
		w.n += allowed
		return allowed, errors.New("write limit reached")
	}
	w.n += len(p)
	return len(p), nil
}

// GenerateInt16 builds totalSamples interleaved samples across channels
// using waveform, mirroring the layout of a WAV payload. totalSamples
// counts individual samples, not frames.
func GenerateInt16(channels, totalSamples int, waveform func(frame, channel int) int16) []int16 {
	out := make([]int16, totalSamples)
	for i := range out {
		out[i] = waveform(i/channels, i%channels)
	}
	return out
}

// SineInt16 generates a full-scale sine wave at frequency Hz, the same
// value on every channel of a frame.
func SineInt16(sampleRate, channels, totalSamples int, frequency float64) []int16 {
	return GenerateInt16(channels, totalSamples, func(frame, channel int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(32767 * math.Sin(2*math.Pi*frequency*t))
	})
}

// RampInt16 generates a deterministic ramp where every sample value
// encodes its own position, useful for exact comparisons.
func RampInt16(channels, totalSamples int) []int16 {
	return GenerateInt16(channels, totalSamples, func(frame, channel int) int16 {
		return int16(frame*channels + channel)
	})
}
