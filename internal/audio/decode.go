// Package audio reads and writes the mono 16-bit PCM WAV files the
// synthesis engines produce.
package audio

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cwbudde/wav"
)

const (
	ExpectedChannels = 1
	ExpectedBitDepth = 16
)

// ErrFormatMismatch is returned when a decoded WAV is not mono 16-bit PCM.
var ErrFormatMismatch = errors.New("WAV format mismatch")

// Clip holds decoded PCM samples. Engines run at different sample rates
// (16 kHz for the VITS models, 24 kHz for vachana), so the rate travels
// with the samples.
type Clip struct {
	Samples    []float32
	SampleRate int
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// DecodeWAV decodes WAV bytes and returns the PCM samples. It validates
// that the format is mono 16-bit PCM but accepts any sample rate.
func DecodeWAV(data []byte) (Clip, error) {
	if len(data) == 0 {
		return Clip{}, errors.New("empty WAV input")
	}

	r := bytes.NewReader(data)
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Clip{}, errors.New("invalid WAV file")
	}

	if dec.NumChans != ExpectedChannels {
		return Clip{}, fmt.Errorf("%w: channels %d, want %d", ErrFormatMismatch, dec.NumChans, ExpectedChannels)
	}
	if dec.BitDepth != ExpectedBitDepth {
		return Clip{}, fmt.Errorf("%w: bit depth %d, want %d", ErrFormatMismatch, dec.BitDepth, ExpectedBitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("reading PCM data: %w", err)
	}

	return Clip{Samples: buf.Data, SampleRate: int(dec.SampleRate)}, nil
}

// Concat joins clips into one. All clips must share a sample rate.
func Concat(clips ...Clip) (Clip, error) {
	if len(clips) == 0 {
		return Clip{}, errors.New("no clips to concatenate")
	}

	out := Clip{SampleRate: clips[0].SampleRate}
	total := 0
	for _, c := range clips {
		if c.SampleRate != out.SampleRate {
			return Clip{}, fmt.Errorf("%w: sample rate %d, want %d", ErrFormatMismatch, c.SampleRate, out.SampleRate)
		}
		total += len(c.Samples)
	}

	out.Samples = make([]float32, 0, total)
	for _, c := range clips {
		out.Samples = append(out.Samples, c.Samples...)
	}
	return out, nil
}
