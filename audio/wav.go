package audio

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"fightreel/config"
)

// EncodeWAV writes samples as 16-bit PCM mono WAV. Samples are clamped
// to [-1, 1] before quantization.
func EncodeWAV(w io.Writer, samples []float64) error {
	const (
		bitsPerSample = 16
		numChannels   = 1
	)
	sampleRate := config.AudioSampleRate
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := len(samples) * blockAlign

	// RIFF header
	if _, err := w.Write([]byte("RIFF")); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(36+dataSize)); err != nil {
		return err
	}
	if _, err := w.Write([]byte("WAVE")); err != nil {
		return err
	}

	// fmt chunk
	if _, err := w.Write([]byte("fmt ")); err != nil {
		return err
	}
	for _, v := range []any{
		uint32(16), // chunk size
		uint16(1),  // PCM
		uint16(numChannels),
		uint32(sampleRate),
		uint32(byteRate),
		uint16(blockAlign),
		uint16(bitsPerSample),
	} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	// data chunk
	if _, err := w.Write([]byte("data")); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(dataSize)); err != nil {
		return err
	}

	buf := make([]byte, 2)
	for _, s := range samples {
		clamped := math.Max(-1, math.Min(1, s))
		binary.LittleEndian.PutUint16(buf, uint16(int16(clamped*32767)))
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// WriteWAV encodes samples to a WAV file at path.
func WriteWAV(path string, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := EncodeWAV(bw, samples); err != nil {
		return err
	}
	return bw.Flush()
}
