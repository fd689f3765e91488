package wavstream

import (
	"fmt"
	"io"

	"github.com/ik5/wavstream/wav"
)

// ReadAll decodes a complete 16-bit PCM WAV stream and returns every
// sample along with the sample rate and channel count.
//
// This is a convenience wrapper for callers that want the whole file at
// once. For streaming access, or for float samples, use wav.NewReader
// directly.
//
// Example:
//
//	file, _ := os.Open("audio.wav")
//	samples, rate, channels, err := wavstream.ReadAll(file)
//	if err != nil {
//	    panic(err)
//	}
//	// samples holds rate-Hz interleaved PCM across channels
func ReadAll(r io.Reader) ([]int16, int, int, error) {
	wr, err := wav.NewReader(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w", err)
	}

	samples := make([]int16, 0, wr.NumSamples())
	buf := make([]int16, 4096)
	for {
		n, err := wr.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w", err)
		}
	}

	return samples, wr.SampleRate(), wr.NumChannels(), nil
}

// WriteAll encodes samples as a complete 16-bit PCM WAV stream on ws.
// The stream is closed — header patched, sink closed when closable —
// on every path, so a failed write still leaves a parseable file with
// the samples committed before the failure.
func WriteAll(ws io.WriteSeeker, sampleRate, numChannels int, samples []int16) error {
	w, err := wav.NewWriter(ws, sampleRate, numChannels)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := w.WriteSamples(samples); err != nil {
		w.Close()
		return fmt.Errorf("%w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
