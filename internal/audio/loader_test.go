package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeWAV writes a 16-bit PCM WAV file with the given interleaved data.
func writeWAV(t *testing.T, path string, rate, channels int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("writing WAV data: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing encoder: %v", err)
	}
}

// sineInt16 generates one channel of a 16-bit sine tone.
func sineInt16(freq float64, rate, n int, amplitude float64) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = int(amplitude * 32767 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return data
}

func TestLoadWAVMono(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")
	writeWAV(t, path, 8000, 1, sineInt16(440, 8000, 8000, 0.8))

	sig, err := Load(path, LoadOptions{TargetRate: 8000})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if sig.SampleRate != 8000 {
		t.Errorf("sample rate = %d, want 8000", sig.SampleRate)
	}
	if math.Abs(sig.Duration()-1.0) > 1e-3 {
		t.Errorf("duration = %g, want 1.0", sig.Duration())
	}

	var peak float64
	for _, s := range sig.Samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-0.8) > 0.01 {
		t.Errorf("peak amplitude = %g, want ~0.8", peak)
	}
}

// writeWAV8 writes an 8-bit unsigned PCM WAV file.
func writeWAV8(t *testing.T, path string, rate int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 8, 1, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 8,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("writing WAV data: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing encoder: %v", err)
	}
}

func TestLoadWAV8BitUnsigned(t *testing.T) {
	dir := t.TempDir()

	t.Run("silence decodes to zero", func(t *testing.T) {
		// 8-bit PCM stores silence as 128, not 0.
		path := filepath.Join(dir, "silence8.wav")
		data := make([]int, 4000)
		for i := range data {
			data[i] = 128
		}
		writeWAV8(t, path, 8000, data)

		sig, err := Load(path, LoadOptions{TargetRate: 8000})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		for i, s := range sig.Samples {
			if math.Abs(s) > 1e-9 {
				t.Fatalf("sample %d = %g, want 0 for 8-bit silence", i, s)
			}
		}
	})

	t.Run("tone is centered", func(t *testing.T) {
		path := filepath.Join(dir, "tone8.wav")
		data := make([]int, 8000)
		for i := range data {
			data[i] = 128 + int(100*math.Sin(2*math.Pi*440*float64(i)/8000))
		}
		writeWAV8(t, path, 8000, data)

		sig, err := Load(path, LoadOptions{TargetRate: 8000})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		var sum, peak float64
		for _, s := range sig.Samples {
			sum += s
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
		if mean := sum / float64(len(sig.Samples)); math.Abs(mean) > 0.01 {
			t.Errorf("mean = %g, want ~0 (no DC offset)", mean)
		}
		if math.Abs(peak-100.0/128.0) > 0.02 {
			t.Errorf("peak = %g, want ~%g", peak, 100.0/128.0)
		}
	})
}

func TestLoadStereoMixdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opposed.wav")

	// Left and right exactly out of phase; the mono average must cancel.
	left := sineInt16(440, 8000, 4000, 0.5)
	data := make([]int, 0, len(left)*2)
	for _, s := range left {
		data = append(data, s, -s)
	}
	writeWAV(t, path, 8000, 2, data)

	sig, err := Load(path, LoadOptions{TargetRate: 8000})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(sig.Samples) != 4000 {
		t.Fatalf("sample count = %d, want 4000", len(sig.Samples))
	}
	for i, s := range sig.Samples {
		if math.Abs(s) > 1e-9 {
			t.Fatalf("sample %d = %g, want 0 after mixdown", i, s)
		}
	}
}

func TestLoadTruncatesToWindow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "long.wav")
	writeWAV(t, path, 8000, 1, sineInt16(440, 8000, 16000, 0.5)) // 2 seconds

	sig, err := Load(path, LoadOptions{WindowSeconds: 0.5, TargetRate: 8000})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(sig.Samples) != 4000 {
		t.Errorf("sample count = %d, want exactly 4000", len(sig.Samples))
	}
}

func TestLoadResamples(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hi.wav")
	writeWAV(t, path, 8000, 1, sineInt16(100, 8000, 8000, 0.5))

	sig, err := Load(path, LoadOptions{TargetRate: 4000})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sig.SampleRate != 4000 {
		t.Errorf("sample rate = %d, want 4000", sig.SampleRate)
	}
	if math.Abs(sig.Duration()-1.0) > 1e-3 {
		t.Errorf("duration = %g, want ~1.0", sig.Duration())
	}
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not a wav file at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.wav")
	writeWAV(t, empty, 8000, 1, nil)
	aac := filepath.Join(dir, "song.aac")
	if err := os.WriteFile(aac, []byte{0xff, 0xf1, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "absent.wav")},
		{"garbage bytes", garbage},
		{"zero frames", empty},
		{"unsupported format", aac},
		{"unknown extension", filepath.Join(dir, "notes.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, LoadOptions{})
			if err == nil {
				t.Fatal("Load succeeded, want DecodeError")
			}
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("error type = %T, want *DecodeError", err)
			}
			if decErr.Path != tt.path {
				t.Errorf("error path = %q, want %q", decErr.Path, tt.path)
			}
		})
	}
}

func TestRecognized(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"track.mp3", true},
		{"track.WAV", true},
		{"track.flac", true},
		{"track.m4a", true},
		{"track.aac", true},
		{"track.ogg", false},
		{"notes.txt", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recognized(tt.name); got != tt.want {
				t.Errorf("Recognized(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResampleLinear(t *testing.T) {
	src := []float64{0, 1, 2, 3, 4, 5, 6, 7}

	down := resampleLinear(src, 8000, 4000)
	if len(down) != 4 {
		t.Fatalf("downsampled length = %d, want 4", len(down))
	}

	up := resampleLinear(src, 4000, 8000)
	if len(up) != 16 {
		t.Fatalf("upsampled length = %d, want 16", len(up))
	}
	// Linear interpolation preserves a ramp.
	for i := 1; i < len(up)-2; i++ {
		want := float64(i) / 2
		if math.Abs(up[i]-want) > 1e-9 {
			t.Errorf("up[%d] = %g, want %g", i, up[i], want)
		}
	}
}
