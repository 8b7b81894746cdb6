package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// decodeWAV reads PCM from a WAV file, averaging channels to mono.
// Decoding stops once windowSeconds of audio has been collected.
func decodeWAV(f *os.File, windowSeconds float64) ([]float64, int, error) {
	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, 0, errors.New("invalid WAV file format")
	}

	rate := int(dec.SampleRate)
	channels := int(dec.NumChans)
	if rate == 0 || channels == 0 {
		return nil, 0, errors.New("WAV header missing sample rate or channels")
	}

	// Normalization divisor for the source bit depth. 8-bit WAV PCM is
	// unsigned, so those samples are re-centered before dividing.
	var offset float64
	switch dec.BitDepth {
	case 8:
		offset = 128
	case 16, 24, 32:
	default:
		return nil, 0, fmt.Errorf("unsupported WAV bit depth %d", dec.BitDepth)
	}
	divisor := float64(int64(1) << (dec.BitDepth - 1))
	maxFrames := int(windowSeconds * float64(rate))

	buf := &gaudio.IntBuffer{
		Format: &gaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:   make([]int, 8192*channels),
	}

	samples := make([]float64, 0, maxFrames)
	for len(samples) < maxFrames {
		n, err := dec.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, 0, err
		}
		if n == 0 {
			break
		}
		for i := 0; i+channels <= n; i += channels {
			var sum float64
			for c := 0; c < channels; c++ {
				sum += float64(buf.Data[i+c]) - offset
			}
			samples = append(samples, sum/float64(channels)/divisor)
			if len(samples) == maxFrames {
				break
			}
		}
	}

	return samples, rate, nil
}
