package gemini

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/rankers-app/rankers-api/internal/generation"
)

// Narration audio format requested from the speech backend: mono 24 kHz
// 16-bit linear PCM.
const (
	narrationSampleRate = 24000
	narrationChannels   = 1
)

// decodePCM16 reinterprets raw bytes as signed 16-bit little-endian
// samples and normalizes each to [-1.0, 1.0) by dividing by 32768.
// frameCount = len(data)/2/channels frames per channel.
func decodePCM16(data []byte, sampleRate, channels int) (*generation.Narration, error) {
	if len(data) == 0 {
		return nil, generation.ErrNoAudioData
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: odd byte length %d", generation.ErrNoAudioData, len(data))
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: invalid channel count %d", generation.ErrNoAudioData, channels)
	}

	samples := make([]float64, len(data)/2)
	for i := range samples {
		sample := int16(binary.LittleEndian.Uint16(data[2*i:]))
		samples[i] = float64(sample) / 32768.0
	}

	return &generation.Narration{
		Samples:    samples,
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}

// decodeBase64PCM16 decodes a base64 audio payload and runs it through
// the PCM16 decode path. This is the shape the wire envelope uses for
// inline audio data.
func decodeBase64PCM16(b64 string, sampleRate, channels int) (*generation.Narration, error) {
	if b64 == "" {
		return nil, generation.ErrNoAudioData
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrNoAudioData, err)
	}
	return decodePCM16(raw, sampleRate, channels)
}
