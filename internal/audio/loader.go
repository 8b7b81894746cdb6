package audio

import (
	"os"
	"path/filepath"
	"strings"
)

// LoadOptions control how a source file is turned into a Signal.
type LoadOptions struct {
	// WindowSeconds bounds the decoded prefix. Zero means DefaultWindowSeconds.
	WindowSeconds float64
	// TargetRate is the output sample rate. Zero means TargetSampleRate.
	TargetRate int
}

func (o LoadOptions) window() float64 {
	if o.WindowSeconds <= 0 {
		return DefaultWindowSeconds
	}
	return o.WindowSeconds
}

func (o LoadOptions) rate() int {
	if o.TargetRate <= 0 {
		return TargetSampleRate
	}
	return o.TargetRate
}

// Load decodes an audio file into a mono Signal at the target sample rate,
// truncated to the analysis window. Multi-channel sources are averaged to
// mono. A source that yields zero samples is a DecodeError.
func Load(path string, opts LoadOptions) (*Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Reason: "cannot open file", Err: err}
	}
	defer f.Close()

	// Decode at most the analysis window; the decoder stops once it has
	// enough source-rate samples to cover it.
	var samples []float64
	var srcRate int

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		samples, srcRate, err = decodeWAV(f, opts.window())
	case ".mp3":
		samples, srcRate, err = decodeMP3(f, opts.window())
	case ".flac":
		samples, srcRate, err = decodeFLAC(f, opts.window())
	case ".m4a", ".aac":
		return nil, &DecodeError{Path: path, Reason: "unsupported audio format " + ext}
	default:
		return nil, &DecodeError{Path: path, Reason: "unsupported audio format " + ext}
	}
	if err != nil {
		return nil, &DecodeError{Path: path, Reason: "corrupt or unreadable stream", Err: err}
	}
	if len(samples) == 0 {
		return nil, &DecodeError{Path: path, Reason: "no decodable samples"}
	}

	if srcRate != opts.rate() {
		samples = resampleLinear(samples, srcRate, opts.rate())
	}

	// The decoders bound decoding at the source rate; after resampling the
	// boundary must hold exactly at the target rate too.
	maxSamples := int(opts.window() * float64(opts.rate()))
	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}

	return &Signal{Samples: samples, SampleRate: opts.rate()}, nil
}
