package transcription

import (
	"context"

	"github.com/echolane/voice-utils/audio"
)

// Transcriber converts a capture to text. Implementations respect ctx for
// cancellation; the returned Result is meaningful only when err is nil.
type Transcriber interface {
	Transcribe(ctx context.Context, capture audio.Capture) (Result, error)
}
