package wav

import "testing"

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrMalformedHeader", ErrMalformedHeader, "malformed WAV header"},
		{"ErrInvalidParams", ErrInvalidParams, "invalid WAV parameters"},
		{"ErrOnlyPCM16bitSupported", ErrOnlyPCM16bitSupported, "only PCM 16-bit supported"},
		{"ErrShortIO", ErrShortIO, "incomplete read or write"},
		{"ErrWriterClosed", ErrWriterClosed, "writer is closed"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatalf("%s is nil", tt.name)
			}
			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}
