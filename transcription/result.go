package transcription

import "time"

// Result is what a transcriber produced for a single capture. Only Text is
// guaranteed; providers differ in which metadata they return.
type Result struct {
	Text       string
	Language   string
	Confidence float64
	Segments   []Segment
}

// Segment is a time-aligned span of the transcript.
type Segment struct {
	Text       string
	Start      time.Duration
	End        time.Duration
	Confidence float64
}
