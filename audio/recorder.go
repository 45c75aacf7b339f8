package audio

// Recorder captures audio from an input device. StartRecording begins
// buffering; StopRecording returns everything buffered since the matching
// start as a single Capture.
type Recorder interface {
	StartRecording() error
	StopRecording() (Capture, error)
	IsRecording() bool
}
