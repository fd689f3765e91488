// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Format identifies the sample encoding stored in the fmt subchunk.
type Format uint16

const (
	// FormatPCM is uncompressed linear PCM, one or two bytes per sample.
	FormatPCM Format = 1
	// FormatALaw is 8-bit ITU-T G.711 A-law.
	FormatALaw Format = 6
	// FormatMuLaw is 8-bit ITU-T G.711 mu-law.
	FormatMuLaw Format = 7
)

// HeaderSize is the size of the canonical PCM WAV header in bytes:
// RIFF chunk header plus format tag, fmt subchunk, data subchunk header.
const HeaderSize = 44

const (
	chunkHeaderSize = 8
	fmtSubchunkSize = 16
)

// Params describes a WAV stream completely: everything the 44-byte
// header stores is either a field here or derived from one. NumSamples
// counts individual interleaved samples across all channels, not frames,
// so it must divide evenly by NumChannels.
type Params struct {
	NumChannels    int
	SampleRate     int
	Format         Format
	BytesPerSample int
	NumSamples     uint32
}

func (p Params) byteRate() uint64 {
	return uint64(p.SampleRate) * uint64(p.NumChannels) * uint64(p.BytesPerSample)
}

func (p Params) blockAlign() int {
	return p.NumChannels * p.BytesPerSample
}

func riffChunkSize(payloadBytes uint32) uint32 {
	return payloadBytes + HeaderSize - chunkHeaderSize
}

// Validate reports whether p can be stored in a canonical WAV header.
// Every field must be positive, fit the width of its header field, and
// agree with the others: the ByteRate product must fit in 32 bits, the
// payload must not overflow the RIFF chunk size field, the format must
// match the sample width, and each channel must carry the same number
// of samples. Failures wrap ErrInvalidParams.
func (p Params) Validate() error {
	if p.NumChannels <= 0 || p.SampleRate <= 0 || p.BytesPerSample <= 0 {
		return fmt.Errorf("%w: channels, sample rate and bytes per sample must be positive", ErrInvalidParams)
	}
	if uint64(p.SampleRate) > math.MaxUint32 {
		return fmt.Errorf("%w: sample rate exceeds the 32-bit SampleRate field", ErrInvalidParams)
	}
	if uint64(p.NumChannels) > math.MaxUint16 {
		return fmt.Errorf("%w: channel count exceeds the 16-bit NumChannels field", ErrInvalidParams)
	}
	if uint64(p.BytesPerSample)*8 > math.MaxUint16 {
		return fmt.Errorf("%w: sample width exceeds the 16-bit BitsPerSample field", ErrInvalidParams)
	}
	if p.byteRate() > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate overflows the 32-bit ByteRate field", ErrInvalidParams)
	}

	switch p.Format {
	case FormatPCM:
		if p.BytesPerSample != 1 && p.BytesPerSample != 2 {
			return fmt.Errorf("%w: PCM requires 1 or 2 bytes per sample", ErrInvalidParams)
		}
	case FormatALaw, FormatMuLaw:
		if p.BytesPerSample != 1 {
			return fmt.Errorf("%w: A-law and mu-law require 1 byte per sample", ErrInvalidParams)
		}
	default:
		return fmt.Errorf("%w: unknown format %d", ErrInvalidParams, p.Format)
	}

	// The RIFF chunk size field counts every byte after the first chunk
	// header and must fit in 32 bits.
	maxSamples := (uint64(math.MaxUint32) - (HeaderSize - chunkHeaderSize)) / uint64(p.BytesPerSample)
	if uint64(p.NumSamples) > maxSamples {
		return fmt.Errorf("%w: payload overflows the 32-bit RIFF chunk size field", ErrInvalidParams)
	}

	if uint64(p.NumSamples)%uint64(p.NumChannels) != 0 {
		return fmt.Errorf("%w: samples must divide evenly across channels", ErrInvalidParams)
	}

	return nil
}

// EncodeHeader serializes p into the canonical 44-byte WAV header, with
// all multi-byte fields little-endian. ByteRate and BlockAlign are
// derived from the other fields, never taken as input. Returns an error
// if p does not validate.
func EncodeHeader(p Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	payload := uint32(p.BytesPerSample) * p.NumSamples
	header := make([]byte, HeaderSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffChunkSize(payload))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtSubchunkSize)
	binary.LittleEndian.PutUint16(header[20:22], uint16(p.Format))
	binary.LittleEndian.PutUint16(header[22:24], uint16(p.NumChannels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(p.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(p.byteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(p.blockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(8*p.BytesPerSample))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], payload)

	return header, nil
}

// DecodeHeader reads a WAV header from r and returns the parameters it
// declares. The stream is left positioned at the first payload byte.
//
// The layout is checked strictly: literal chunk tags, a 16-byte fmt
// subchunk (or the 18-byte variant whose two-byte extension must be
// zero), and stored ByteRate/BlockAlign values that agree with the
// derived ones. The RIFF chunk size may exceed the payload, since some
// encoders append metadata after the data chunk, but it may never
// undercut it. Short reads are errors, not partial results.
func DecodeHeader(r io.Reader) (Params, error) {
	// Everything up to the data chunk header.
	head := make([]byte, HeaderSize-chunkHeaderSize)
	if _, err := io.ReadFull(r, head); err != nil {
		return Params{}, fmt.Errorf("%w: reading header: %v", ErrMalformedHeader, err)
	}

	if !bytes.Equal(head[0:4], []byte("RIFF")) || !bytes.Equal(head[8:12], []byte("WAVE")) {
		return Params{}, ErrNotWavFile
	}
	if !bytes.Equal(head[12:16], []byte("fmt ")) {
		return Params{}, fmt.Errorf("%w: missing fmt subchunk", ErrMalformedHeader)
	}

	fmtSize := binary.LittleEndian.Uint32(head[16:20])
	if fmtSize != fmtSubchunkSize {
		// PCM permits an optional two-byte extension field, but it must
		// be zero.
		if fmtSize != fmtSubchunkSize+2 {
			return Params{}, fmt.Errorf("%w: fmt subchunk size %d", ErrMalformedHeader, fmtSize)
		}
		var ext [2]byte
		if _, err := io.ReadFull(r, ext[:]); err != nil {
			return Params{}, fmt.Errorf("%w: reading fmt extension: %v", ErrMalformedHeader, err)
		}
		if binary.LittleEndian.Uint16(ext[:]) != 0 {
			return Params{}, fmt.Errorf("%w: nonzero fmt extension", ErrMalformedHeader)
		}
	}

	var dataHeader [chunkHeaderSize]byte
	if _, err := io.ReadFull(r, dataHeader[:]); err != nil {
		return Params{}, fmt.Errorf("%w: reading data chunk header: %v", ErrMalformedHeader, err)
	}
	if !bytes.Equal(dataHeader[0:4], []byte("data")) {
		return Params{}, fmt.Errorf("%w: missing data subchunk", ErrMalformedHeader)
	}

	p := Params{
		Format:      Format(binary.LittleEndian.Uint16(head[20:22])),
		NumChannels: int(binary.LittleEndian.Uint16(head[22:24])),
		SampleRate:  int(binary.LittleEndian.Uint32(head[24:28])),
	}
	bits := int(binary.LittleEndian.Uint16(head[34:36]))
	p.BytesPerSample = bits / 8
	if p.BytesPerSample <= 0 {
		return Params{}, fmt.Errorf("%w: %d bits per sample", ErrMalformedHeader, bits)
	}

	payload := binary.LittleEndian.Uint32(dataHeader[4:8])
	p.NumSamples = payload / uint32(p.BytesPerSample)

	if binary.LittleEndian.Uint32(head[4:8]) < riffChunkSize(payload) {
		return Params{}, fmt.Errorf("%w: RIFF chunk size smaller than the data payload", ErrMalformedHeader)
	}
	if uint64(binary.LittleEndian.Uint32(head[28:32])) != p.byteRate() {
		return Params{}, fmt.Errorf("%w: stored ByteRate disagrees with the derived value", ErrMalformedHeader)
	}
	if int(binary.LittleEndian.Uint16(head[32:34])) != p.blockAlign() {
		return Params{}, fmt.Errorf("%w: stored BlockAlign disagrees with the derived value", ErrMalformedHeader)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}
