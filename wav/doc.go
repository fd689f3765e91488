// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit linear PCM WAV files through a
// minimal streaming interface.
//
// The package has two layers. The header codec — Params, Validate,
// EncodeHeader, DecodeHeader — is a set of pure functions over the
// canonical 44-byte RIFF/WAVE/fmt /data header. Reader and Writer wrap
// an open byte stream and delegate all header work to the codec.
//
// # Supported Formats
//
// The codec validates PCM, A-law and mu-law parameter sets, but the
// Reader and Writer handle 16-bit PCM only:
//   - Mono, stereo, or any channel count that fits the header
//   - Any sample rate
//   - Optional two-byte zero fmt extension accepted on read
//
// # Reading
//
//	file, _ := os.Open("audio.wav")
//	r, err := wav.NewReader(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer r.Close()
//
//	buf := make([]int16, 4096)
//	for {
//	    n, err := r.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    // Process buf[:n]
//	}
//
// The header is parsed once, up front. Reads are clamped to the sample
// count the header declares, so trailing metadata after the data chunk
// is never decoded as audio. A short read is normal only at
// end-of-stream; callers confirm exhaustion by reading until io.EOF.
//
// # Writing
//
//	file, _ := os.Create("audio.wav")
//	w, err := wav.NewWriter(file, 16000, 2)
//	if err != nil {
//	    // Handle error
//	}
//	defer w.Close()
//
//	err = w.WriteSamples(samples)
//
// The final header depends on the total sample count, so NewWriter
// emits a 44-byte zero placeholder and Close seeks back and patches it.
// A stream abandoned before Close keeps the placeholder and is not a
// valid WAV file. For sinks that cannot seek, NewBufferedWriter stages
// the whole file in memory and streams it out on Close.
//
// Float variants exist on both sides. They carry values in the int16
// range [-32768, 32767] rather than normalized [-1, 1]: the writer
// rounds half away from zero with saturation, and the reader widens
// losslessly.
//
// # Error Handling
//
// The package defines sentinel errors, matched with errors.Is:
//   - ErrNotWavFile: the RIFF/WAVE tags are missing
//   - ErrMalformedHeader: tag, size or cross-field check failed
//   - ErrInvalidParams: a parameter set no header can store
//   - ErrOnlyPCM16bitSupported: valid header, unsupported encoding
//   - ErrShortIO: a write transferred fewer bytes than required
//   - ErrWriterClosed: a write was attempted after Close
//
// Header and parameter errors abort the open or close operation with no
// partial object returned.
//
// # Concurrency
//
// Readers and Writers are single-threaded, blocking, and own their
// stream exclusively. Nothing in the package locks; sharing an instance
// across goroutines is not supported.
package wav
