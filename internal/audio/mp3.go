package audio

import (
	"encoding/binary"
	"errors"
	"io"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// decodeMP3 reads PCM from an MP3 stream. go-mp3 always emits 16-bit
// little-endian stereo, 4 bytes per sample frame; the two channels are
// averaged to mono.
func decodeMP3(f *os.File, windowSeconds float64) ([]float64, int, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, err
	}

	rate := dec.SampleRate()
	if rate == 0 {
		return nil, 0, errors.New("MP3 stream has no sample rate")
	}
	maxFrames := int(windowSeconds * float64(rate))

	samples := make([]float64, 0, maxFrames)
	buf := make([]byte, 8192)
	for len(samples) < maxFrames {
		n, err := dec.Read(buf)
		for i := 0; i+4 <= n; i += 4 {
			left := int16(binary.LittleEndian.Uint16(buf[i:]))
			right := int16(binary.LittleEndian.Uint16(buf[i+2:]))
			samples = append(samples, (float64(left)+float64(right))/2/32768.0)
			if len(samples) == maxFrames {
				break
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
	}

	return samples, rate, nil
}
