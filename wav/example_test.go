// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/wavstream/wav"
)

// Example_writing demonstrates writing a WAV file to a plain writer.
func Example_writing() {
	samples := []int16{100, -100, 200, -200, 300, -300}

	// A bytes.Buffer cannot seek, so the buffered writer stages the
	// file and streams it out on Close. With an os.File, use NewWriter.
	output := new(bytes.Buffer)
	w, err := wav.NewBufferedWriter(output, 8000, 2)
	if err != nil {
		fmt.Printf("open error: %v\n", err)
		return
	}

	if err := w.WriteSamples(samples); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}
	if err := w.Close(); err != nil {
		fmt.Printf("close error: %v\n", err)
		return
	}

	fmt.Printf("file size: %d bytes\n", output.Len())
	// Output:
	// file size: 56 bytes
}

// Example_reading demonstrates decoding a WAV stream.
func Example_reading() {
	samples := []int16{100, -100, 200, -200, 300, -300}
	output := new(bytes.Buffer)
	w, _ := wav.NewBufferedWriter(output, 8000, 2)
	w.WriteSamples(samples)
	w.Close()

	r, err := wav.NewReader(bytes.NewReader(output.Bytes()))
	if err != nil {
		fmt.Printf("open error: %v\n", err)
		return
	}

	fmt.Printf("sample rate: %d Hz\n", r.SampleRate())
	fmt.Printf("channels: %d\n", r.NumChannels())

	buf := make([]int16, 16)
	n, err := r.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("read error: %v\n", err)
		return
	}
	fmt.Printf("read %d samples\n", n)
	// Output:
	// sample rate: 8000 Hz
	// channels: 2
	// read 6 samples
}

// Example_validate demonstrates the parameter checks the codec applies
// before a header is written.
func Example_validate() {
	p := wav.Params{
		NumChannels:    2,
		SampleRate:     16000,
		Format:         wav.FormatPCM,
		BytesPerSample: 2,
		NumSamples:     101, // uneven across 2 channels
	}

	if err := p.Validate(); err != nil {
		fmt.Println("rejected:", err)
	}
	// Output:
	// rejected: invalid WAV parameters: samples must divide evenly across channels
}
