// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// readChunkSamples bounds the transient int16 buffer used by the float
// read path. Any chunk size preserves the conversion semantics.
const readChunkSamples = 2048

// Reader decodes 16-bit PCM samples from a WAV stream.
//
// The header is parsed and validated when the Reader is created, and
// reads never run past the sample count it declares, so trailing
// metadata after the data chunk is left untouched. A Reader owns its
// stream exclusively and is not safe for concurrent use.
type Reader struct {
	r         io.Reader
	params    Params
	remaining uint32
	buf       []byte
	tmp       []int16
}

// NewReader parses and validates the WAV header on r and prepares
// sample reads. Only 16-bit PCM streams are accepted; any other format
// or sample width fails with ErrOnlyPCM16bitSupported.
func NewReader(r io.Reader) (*Reader, error) {
	params, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}
	if params.Format != FormatPCM || params.BytesPerSample != 2 {
		return nil, ErrOnlyPCM16bitSupported
	}

	return &Reader{
		r:         r,
		params:    params,
		remaining: params.NumSamples,
	}, nil
}

// SampleRate of the stream in Hz.
func (r *Reader) SampleRate() int { return r.params.SampleRate }

// NumChannels count (e.g., 1=mono, 2=stereo).
func (r *Reader) NumChannels() int { return r.params.NumChannels }

// NumSamples is the total interleaved sample count declared by the header.
func (r *Reader) NumSamples() uint32 { return r.params.NumSamples }

// SamplesRemaining reports how many samples are left to read.
func (r *Reader) SamplesRemaining() uint32 { return r.remaining }

// ReadSamples fills dst with interleaved samples and returns how many
// were read. A count below len(dst) means the stream is exhausted;
// callers see (0, io.EOF) once nothing remains. Any short read that is
// not end-of-stream surfaces as an error from the underlying stream.
func (r *Reader) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if r.remaining == 0 {
		return 0, io.EOF
	}

	// There may be metadata after the audio; never read past the
	// header's sample count.
	want := len(dst)
	if uint64(want) > uint64(r.remaining) {
		want = int(r.remaining)
	}

	if len(r.buf) < want*2 {
		r.buf = make([]byte, want*2)
	}
	n, err := io.ReadFull(r.r, r.buf[:want*2])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("reading samples: %w", err)
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(r.buf[2*i : 2*i+2]))
	}
	r.remaining -= uint32(samples)

	if samples == 0 {
		return 0, io.EOF
	}
	return samples, nil
}

// ReadFloatSamples fills dst with samples widened losslessly to
// float32. No scaling is applied, so values mirror the int16 range
// [-32768, 32767]. The end-of-stream contract matches ReadSamples.
func (r *Reader) ReadFloatSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if r.tmp == nil {
		r.tmp = make([]int16, readChunkSamples)
	}

	read := 0
	for read < len(dst) {
		chunk := min(len(dst)-read, readChunkSamples)
		n, err := r.ReadSamples(r.tmp[:chunk])
		for i := 0; i < n; i++ {
			dst[read+i] = float32(r.tmp[i])
		}
		read += n
		if err != nil {
			if errors.Is(err, io.EOF) && read > 0 {
				return read, nil
			}
			return read, err
		}
		if n < chunk {
			break
		}
	}

	return read, nil
}

// Close closes the underlying stream when it supports closing.
func (r *Reader) Close() error {
	if c, ok := r.r.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}
