package fakes

import (
	"context"
	"sync"

	"github.com/echolane/voice-utils/audio"
	"github.com/echolane/voice-utils/transcription"
)

// FakeTranscriber returns pre-configured results or errors. It is safe for
// concurrent use; the call count and recorded captures are guarded by a
// mutex.
type FakeTranscriber struct {
	TranscribeResult  transcription.Result
	TranscribeResults []transcription.Result
	TranscribeErr     error
	TranscribeErrs    []error

	TranscribeStub func(ctx context.Context, capture audio.Capture) (transcription.Result, error)

	TranscribeCallCount int
	TranscribeCaptures  []audio.Capture

	mutex sync.Mutex
}

var _ transcription.Transcriber = &FakeTranscriber{}

func NewFakeTranscriber() *FakeTranscriber {
	return &FakeTranscriber{}
}

func (t *FakeTranscriber) Transcribe(ctx context.Context, capture audio.Capture) (transcription.Result, error) {
	t.mutex.Lock()

	t.TranscribeCallCount++
	t.TranscribeCaptures = append(t.TranscribeCaptures, capture)

	stub := t.TranscribeStub

	result, err := t.TranscribeResult, t.TranscribeErr

	// the stub overrides configured returns, so leave the queues untouched
	if stub == nil {
		if len(t.TranscribeResults) > 0 {
			result = t.TranscribeResults[0]
			t.TranscribeResults = t.TranscribeResults[1:]
		}

		if len(t.TranscribeErrs) > 0 {
			err = t.TranscribeErrs[0]
			t.TranscribeErrs = t.TranscribeErrs[1:]
		}
	}

	t.mutex.Unlock()

	if stub != nil {
		return stub(ctx, capture)
	}

	if err != nil {
		return transcription.Result{}, err
	}

	return result, nil
}
