// Package audio decodes audio files into mono sample buffers for analysis.
package audio

import (
	"fmt"
	"strings"
)

const (
	// TargetSampleRate is the rate every signal is resampled to before analysis.
	TargetSampleRate = 22050

	// DefaultWindowSeconds bounds how much audio is decoded and analyzed.
	// Longer files are truncated, shorter files are used in full.
	DefaultWindowSeconds = 60.0
)

// Extensions lists the audio file extensions the system recognizes.
var Extensions = []string{".mp3", ".wav", ".flac", ".m4a", ".aac"}

// Signal is a mono sample sequence at a known sample rate.
// Samples are normalized to [-1, 1] and never mutated after loading.
type Signal struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the signal length in seconds.
func (s *Signal) Duration() float64 {
	if s.SampleRate == 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// DecodeError reports a source that could not be decoded into samples:
// unsupported format, corrupt stream, or no decodable audio at all.
type DecodeError struct {
	Path   string
	Reason string
	Err    error // underlying decoder error, may be nil
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode %s: %s", e.Path, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Recognized reports whether the file name carries a recognized audio extension.
func Recognized(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
