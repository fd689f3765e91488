// SPDX-License-Identifier: EPL-2.0

// Package wavstream provides streaming readers and writers for 16-bit
// PCM WAV files.
//
// The heavy lifting lives in the wav subpackage: a strict header codec
// plus stream-wrapping Reader and Writer types. This root package adds
// whole-file convenience functions on top of them.
//
// # Quick Start
//
// Read an entire file into memory:
//
//	file, _ := os.Open("audio.wav")
//	samples, rate, channels, err := wavstream.ReadAll(file)
//
// Write one out:
//
//	file, _ := os.Create("output.wav")
//	err := wavstream.WriteAll(file, 16000, 2, samples)
//
// # Streaming
//
// For incremental reads and writes, use the wav subpackage directly:
//
//	w, err := wav.NewWriter(file, 16000, 2)
//	defer w.Close()
//	w.WriteSamples(chunk)
//
// The writer patches the header with the final sample count when it is
// closed, so Close must run on every path. Sinks that cannot seek get
// the same API through wav.NewBufferedWriter.
//
// # Sample Conversion
//
// The utils subpackage converts between int16 samples and float values
// carried in the int16 range, rounding half away from zero with
// saturation. Both Reader and Writer expose float variants built on it.
package wavstream
