package fakes

import (
	"sync"

	"github.com/echolane/voice-utils/audio"
)

// FakeRecorder is safe for concurrent use; counts and the recording flag are
// guarded by a mutex.
type FakeRecorder struct {
	StartRecordingErr       error
	StartRecordingCallCount int

	StopRecordingErr       error
	StopRecordingCallCount int
	StopRecordingCapture   audio.Capture
	StopRecordingCaptures  []audio.Capture

	recording bool
	mutex     sync.Mutex
}

var _ audio.Recorder = &FakeRecorder{}

func NewFakeRecorder() *FakeRecorder {
	return &FakeRecorder{}
}

func (r *FakeRecorder) StartRecording() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.StartRecordingCallCount++

	if r.StartRecordingErr != nil {
		return r.StartRecordingErr
	}

	r.recording = true
	return nil
}

func (r *FakeRecorder) StopRecording() (audio.Capture, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.StopRecordingCallCount++
	r.recording = false

	if r.StopRecordingErr != nil {
		return audio.Capture{}, r.StopRecordingErr
	}

	capture := r.StopRecordingCapture

	if len(r.StopRecordingCaptures) > 0 {
		capture = r.StopRecordingCaptures[0]
		r.StopRecordingCaptures = r.StopRecordingCaptures[1:]
	}

	if capture.PCM == nil && capture.Format == (audio.Format{}) {
		capture = audio.EmptyCapture()
	}

	return capture, nil
}

func (r *FakeRecorder) IsRecording() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.recording
}
