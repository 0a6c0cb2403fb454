// Package audiotest writes WAV fixtures for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV encodes a PCM WAV file of the given format holding frames of a
// 440 Hz tone.
func WriteWAV(filename string, sampleRate, channels, bitDepth, frames int) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer file.Close()

	encoder := wav.NewEncoder(file, sampleRate, bitDepth, channels, 1)

	peak := float64(int(1)<<(bitDepth-1) - 1)
	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, frames*channels),
		SourceBitDepth: bitDepth,
	}

	for frame := 0; frame < frames; frame++ {
		v := int(peak * 0.5 * math.Sin(2*math.Pi*440*float64(frame)/float64(sampleRate)))
		for ch := 0; ch < channels; ch++ {
			intBuf.Data[frame*channels+ch] = v
		}
	}

	if err := encoder.Write(intBuf); err != nil {
		return fmt.Errorf("failed to write audio data to %s: %w", filename, err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close encoder for %s: %w", filename, err)
	}

	return nil
}

// RawHeader describes a hand-built canonical WAV layout. It can express
// files the encoder refuses to produce.
type RawHeader struct {
	FormatTag  uint16
	SampleRate uint32
	Channels   uint16
	BitDepth   uint16
	DataSize   uint32 // Declared size of the data chunk
	Payload    int    // Bytes actually written after the data chunk header
	OmitData   bool   // Leave out the data chunk entirely
}

// Bytes renders the header, followed by Payload zero bytes.
func (h RawHeader) Bytes() []byte {
	buf := new(bytes.Buffer)

	blockAlign := h.Channels * (h.BitDepth / 8)
	byteRate := h.SampleRate * uint32(blockAlign)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36)+h.DataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, h.FormatTag)
	binary.Write(buf, binary.LittleEndian, h.Channels)
	binary.Write(buf, binary.LittleEndian, h.SampleRate)
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, h.BitDepth)

	if h.OmitData {
		return buf.Bytes()
	}

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, h.DataSize)
	buf.Write(make([]byte, h.Payload))

	return buf.Bytes()
}

// WriteRaw writes b to filename.
func WriteRaw(filename string, b []byte) error {
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
