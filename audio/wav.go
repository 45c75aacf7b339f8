package audio

import (
	"bytes"
	"encoding/binary"

	verr "github.com/echolane/voice-utils/errors"
)

const wavHeaderSize = 36

// EncodeWAV wraps a capture's PCM bytes in a RIFF/WAVE container
// (PCM encoding, little-endian).
func EncodeWAV(capture Capture) ([]byte, error) {
	format := capture.Format
	if format.BitDepth != 16 {
		return nil, verr.Errorf("Encoding WAV: unsupported bit depth %d", format.BitDepth)
	}
	if format.Channels < 1 {
		return nil, verr.Errorf("Encoding WAV: invalid channel count %d", format.Channels)
	}
	if format.SampleRate < 1 {
		return nil, verr.Errorf("Encoding WAV: invalid sample rate %d", format.SampleRate)
	}

	var buf bytes.Buffer

	dataSize := len(capture.PCM)
	padding := dataSize % 2
	byteRate := format.SampleRate * format.BytesPerFrame()

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, int32(wavHeaderSize+dataSize+padding))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, int32(16))
	binary.Write(&buf, binary.LittleEndian, int16(1))
	binary.Write(&buf, binary.LittleEndian, int16(format.Channels))
	binary.Write(&buf, binary.LittleEndian, int32(format.SampleRate))
	binary.Write(&buf, binary.LittleEndian, int32(byteRate))
	binary.Write(&buf, binary.LittleEndian, int16(format.BytesPerFrame()))
	binary.Write(&buf, binary.LittleEndian, int16(format.BitDepth))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, int32(dataSize))
	buf.Write(capture.PCM)

	// chunks are padded to an even byte boundary
	if padding == 1 {
		buf.WriteByte(0)
	}

	return buf.Bytes(), nil
}

// DecodeWAV parses a RIFF/WAVE container holding PCM audio and returns the
// capture it describes. Chunks other than "fmt " and "data" are skipped.
func DecodeWAV(data []byte) (Capture, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Capture{}, verr.Error("Decoding WAV: not a RIFF/WAVE header")
	}

	var format Format
	var pcm []byte
	sawFormat := false

	rest := data[12:]
	for len(rest) >= 8 {
		chunkID := string(rest[0:4])
		chunkSize := int(binary.LittleEndian.Uint32(rest[4:8]))
		rest = rest[8:]

		if chunkSize > len(rest) {
			return Capture{}, verr.Errorf("Decoding WAV: truncated %q chunk", chunkID)
		}
		chunk := rest[:chunkSize]

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return Capture{}, verr.Error("Decoding WAV: short fmt chunk")
			}
			if encoding := binary.LittleEndian.Uint16(chunk[0:2]); encoding != 1 {
				return Capture{}, verr.Errorf("Decoding WAV: unsupported encoding %d", encoding)
			}
			format.Channels = int(binary.LittleEndian.Uint16(chunk[2:4]))
			format.SampleRate = int(binary.LittleEndian.Uint32(chunk[4:8]))
			format.BitDepth = int(binary.LittleEndian.Uint16(chunk[14:16]))
			sawFormat = true
		case "data":
			pcm = chunk
		}

		// chunks are padded to an even byte boundary
		if chunkSize%2 == 1 {
			chunkSize++
			if chunkSize > len(rest) {
				chunkSize = len(rest)
			}
		}
		rest = rest[chunkSize:]
	}

	if !sawFormat {
		return Capture{}, verr.Error("Decoding WAV: missing fmt chunk")
	}
	if pcm == nil {
		return Capture{}, verr.Error("Decoding WAV: missing data chunk")
	}

	return NewCapture(pcm, format), nil
}
