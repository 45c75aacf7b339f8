package audio

import "time"

// Capture is an immutable snapshot of recorded audio: raw PCM bytes plus the
// format they were recorded in.
type Capture struct {
	PCM    []byte
	Format Format
}

func NewCapture(pcm []byte, format Format) Capture {
	return Capture{
		PCM:    pcm,
		Format: format,
	}
}

// EmptyCapture is the zero-length capture returned by recorders that were
// stopped before producing any audio.
func EmptyCapture() Capture {
	return Capture{Format: DefaultFormat()}
}

func (c Capture) Empty() bool {
	return len(c.PCM) == 0
}

func (c Capture) Duration() time.Duration {
	bytesPerFrame := c.Format.BytesPerFrame()
	if bytesPerFrame == 0 || c.Format.SampleRate == 0 {
		return 0
	}

	frames := len(c.PCM) / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(c.Format.SampleRate)
}
