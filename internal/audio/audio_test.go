package audio

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recdiag/internal/audio/audiotest"
)

func TestReadHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		bitDepth   int
		frames     int
	}{
		{"48k stereo 16-bit", 48000, 2, 16, 4800},
		{"44.1k mono 16-bit", 44100, 1, 16, 4410},
		{"16k mono 16-bit", 16000, 1, 16, 1600},
		{"48k stereo 24-bit", 48000, 2, 24, 480},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "rec.wav")
			require.NoError(t, audiotest.WriteWAV(path, tt.sampleRate, tt.channels, tt.bitDepth, tt.frames))

			h, err := ReadHeader(path)
			require.NoError(t, err)

			assert.Equal(t, path, h.Path)
			assert.Equal(t, tt.sampleRate, h.SampleRate)
			assert.Equal(t, tt.channels, h.Channels)
			assert.Equal(t, tt.bitDepth, h.BitDepth)
			assert.Equal(t, FormatPCM, h.AudioFormat)
			assert.Equal(t, int64(tt.frames), h.Frames)
			assert.Greater(t, h.Size, int64(tt.frames*tt.channels*tt.bitDepth/8))
		})
	}
}

func TestReadHeader_DecodeErrors(t *testing.T) {
	t.Parallel()

	pcm := audiotest.RawHeader{FormatTag: 1, SampleRate: 48000, Channels: 2, BitDepth: 16, DataSize: 400, Payload: 400}

	tests := []struct {
		name    string
		content []byte
		want    error
	}{
		{"empty file", nil, ErrNotWAV},
		{"text file", []byte("this is definitely not audio data"), ErrNotWAV},
		{"riff without wave", append([]byte("RIFF\x00\x00\x00\x00AVI "), make([]byte, 32)...), ErrNotWAV},
		{"no fmt chunk", []byte("RIFF\x04\x00\x00\x00WAVE"), ErrMalformedHeader},
		{"zero channels", func() []byte { h := pcm; h.Channels = 0; return h.Bytes() }(), ErrMalformedHeader},
		{"zero sample rate", func() []byte { h := pcm; h.SampleRate = 0; return h.Bytes() }(), ErrMalformedHeader},
		{"adpcm", func() []byte { h := pcm; h.FormatTag = 2; return h.Bytes() }(), ErrUnsupportedEncoding},
		{"no data chunk", func() []byte { h := pcm; h.OmitData = true; return h.Bytes() }(), ErrMissingPCMData},
		{"truncated payload", func() []byte { h := pcm; h.DataSize = 1 << 20; h.Payload = 64; return h.Bytes() }(), ErrTruncated},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "bad.wav")
			require.NoError(t, audiotest.WriteRaw(path, tt.content))

			h, err := ReadHeader(path)
			require.Error(t, err)
			assert.Nil(t, h)
			assert.ErrorIs(t, err, tt.want)

			var headerErr *HeaderError
			require.True(t, errors.As(err, &headerErr))
			assert.Equal(t, path, headerErr.Path)
		})
	}
}

func TestReadHeader_RawPCM(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "raw.wav")
	raw := audiotest.RawHeader{FormatTag: 1, SampleRate: 44100, Channels: 1, BitDepth: 16, DataSize: 882, Payload: 882}
	require.NoError(t, audiotest.WriteRaw(path, raw.Bytes()))

	h, err := ReadHeader(path)
	require.NoError(t, err)

	assert.Equal(t, 44100, h.SampleRate)
	assert.Equal(t, 1, h.Channels)
	assert.Equal(t, int64(441), h.Frames)
	assert.Equal(t, int64(44+882), h.Size)
}

func TestReadHeader_FloatAccepted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "float.wav")
	raw := audiotest.RawHeader{FormatTag: FormatIEEEFloat, SampleRate: 48000, Channels: 2, BitDepth: 32, DataSize: 800, Payload: 800}
	require.NoError(t, audiotest.WriteRaw(path, raw.Bytes()))

	h, err := ReadHeader(path)
	require.NoError(t, err)

	assert.Equal(t, FormatIEEEFloat, h.AudioFormat)
	assert.Equal(t, int64(100), h.Frames)
}

func TestReadHeader_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadHeader(filepath.Join(t.TempDir(), "nope.wav"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var headerErr *HeaderError
	assert.False(t, errors.As(err, &headerErr))
}

func TestHeaderError(t *testing.T) {
	t.Parallel()

	err := &HeaderError{Path: "a.wav", Err: ErrTruncated}

	assert.Equal(t, "a.wav: truncated WAV file", err.Error())
	assert.ErrorIs(t, err, ErrTruncated)
	assert.NotErrorIs(t, err, ErrNotWAV)
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	allErrors := []error{ErrNotWAV, ErrMalformedHeader, ErrUnsupportedEncoding, ErrMissingPCMData, ErrTruncated}

	messages := make(map[string]bool)
	for _, err := range allErrors {
		assert.False(t, messages[err.Error()], "duplicate message %q", err.Error())
		messages[err.Error()] = true

		for _, other := range allErrors {
			if other != err {
				assert.NotErrorIs(t, err, other)
			}
		}
	}
}
