package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tphakala/flac"
)

// decodeFLAC reads PCM from a FLAC file, averaging channels to mono.
// Frames arrive as interleaved little-endian bytes at the stream bit depth.
func decodeFLAC(f *os.File, windowSeconds float64) ([]float64, int, error) {
	dec, err := flac.NewDecoder(f)
	if err != nil {
		return nil, 0, err
	}

	rate := dec.SampleRate
	channels := dec.NChannels
	depth := dec.BitsPerSample
	if rate == 0 || channels == 0 {
		return nil, 0, errors.New("FLAC header missing sample rate or channels")
	}

	var divisor float64
	switch depth {
	case 16:
		divisor = 32768.0
	case 24:
		divisor = 8388608.0
	case 32:
		divisor = 2147483648.0
	default:
		return nil, 0, fmt.Errorf("unsupported FLAC bit depth %d", depth)
	}

	maxFrames := int(windowSeconds * float64(rate))
	bytesPerSample := depth / 8
	stride := bytesPerSample * channels

	samples := make([]float64, 0, maxFrames)
	for len(samples) < maxFrames {
		frame, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		for i := 0; i+stride <= len(frame); i += stride {
			var sum float64
			for c := 0; c < channels; c++ {
				off := i + c*bytesPerSample
				var v int32
				switch depth {
				case 16:
					v = int32(int16(binary.LittleEndian.Uint16(frame[off:])))
				case 24:
					v = int32(frame[off]) | int32(frame[off+1])<<8 | int32(frame[off+2])<<16
					if v&0x800000 != 0 {
						v |= -1 << 24 // sign extension
					}
				case 32:
					v = int32(binary.LittleEndian.Uint32(frame[off:]))
				}
				sum += float64(v)
			}
			samples = append(samples, sum/float64(channels)/divisor)
			if len(samples) == maxFrames {
				break
			}
		}
	}

	return samples, rate, nil
}
