package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrMalformedHeader       = errors.New("malformed WAV header")
	ErrInvalidParams         = errors.New("invalid WAV parameters")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrShortIO               = errors.New("incomplete read or write")
	ErrWriterClosed          = errors.New("writer is closed")
)
