package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// WAV format tags accepted by ReadHeader
const (
	FormatPCM        = 0x0001
	FormatIEEEFloat  = 0x0003
	FormatExtensible = 0xFFFE
)

// Header describes the format of a WAV recording as read from its header
type Header struct {
	Path        string
	SampleRate  int   // Sample rate in Hz
	Channels    int   // Number of channels
	BitDepth    int   // Bits per sample
	AudioFormat int   // WAV format tag
	Frames      int64 // Samples per channel
	Size        int64 // File size in bytes
}

// ReadHeader opens a WAV file and reads its format fields without decoding
// the PCM payload. Decode failures are returned as *HeaderError.
func ReadHeader(path string) (*Header, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file %s", path)
	}
	defer file.Close()

	if err := checkMagic(file); err != nil {
		return nil, &HeaderError{Path: path, Err: err}
	}

	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()
	if err := decoder.Err(); err != nil {
		return nil, &HeaderError{Path: path, Err: fmt.Errorf("%w: %v", ErrMalformedHeader, err)}
	}

	if decoder.NumChans == 0 || decoder.SampleRate == 0 || decoder.BitDepth == 0 {
		return nil, &HeaderError{Path: path, Err: fmt.Errorf("%w: missing or empty fmt chunk", ErrMalformedHeader)}
	}

	switch decoder.WavAudioFormat {
	case FormatPCM, FormatIEEEFloat, FormatExtensible:
	default:
		return nil, &HeaderError{
			Path: path,
			Err:  fmt.Errorf("%w: format tag 0x%04x", ErrUnsupportedEncoding, decoder.WavAudioFormat),
		}
	}

	// FwdToPCM can stop at EOF without reporting it, so the chunk is checked too
	if err := decoder.FwdToPCM(); err != nil {
		return nil, &HeaderError{Path: path, Err: fmt.Errorf("%w: %v", ErrMissingPCMData, err)}
	}
	if decoder.PCMChunk == nil {
		return nil, &HeaderError{Path: path, Err: ErrMissingPCMData}
	}

	if int64(decoder.PCMSize) > info.Size() {
		return nil, &HeaderError{
			Path: path,
			Err:  fmt.Errorf("%w: data chunk declares %d bytes, file has %d", ErrTruncated, decoder.PCMSize, info.Size()),
		}
	}

	channels := int(decoder.NumChans)
	bitDepth := int(decoder.BitDepth)
	blockAlign := int64(channels * ((bitDepth + 7) / 8))

	return &Header{
		Path:        path,
		SampleRate:  int(decoder.SampleRate),
		Channels:    channels,
		BitDepth:    bitDepth,
		AudioFormat: int(decoder.WavAudioFormat),
		Frames:      int64(decoder.PCMSize) / blockAlign,
		Size:        info.Size(),
	}, nil
}

// checkMagic verifies the RIFF/WAVE preamble and rewinds the file
func checkMagic(file io.ReadSeeker) error {
	preamble := make([]byte, 12)
	if _, err := io.ReadFull(file, preamble); err != nil {
		return fmt.Errorf("%w: %v", ErrNotWAV, err)
	}

	if !bytes.Equal(preamble[:4], []byte("RIFF")) || !bytes.Equal(preamble[8:12], []byte("WAVE")) {
		return ErrNotWAV
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "failed to rewind")
	}

	return nil
}

// DurationMinutes returns frames / rate / 60
func (h *Header) DurationMinutes() float64 {
	return DurationMinutes(h.Frames, h.SampleRate)
}

// SizeMB returns the file size in mebibytes
func (h *Header) SizeMB() float64 {
	return float64(h.Size) / 1024 / 1024
}
