package fakes

import (
	"context"
	"os"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/echolane/voice-utils/audio"
	verr "github.com/echolane/voice-utils/errors"
	"github.com/echolane/voice-utils/transcription"
)

type ScriptStep struct {
	Text       string  `yaml:"text"`
	Language   string  `yaml:"language"`
	Confidence float64 `yaml:"confidence"`
	Error      string  `yaml:"error"`
}

type script struct {
	Results []ScriptStep `yaml:"results"`
}

// ScriptedTranscriber replays a fixed sequence of canned results, one per
// Transcribe call. Steps with a non-empty Error fail with that message.
// Calling past the end of the script is an error, so tests notice subjects
// transcribing more often than expected.
type ScriptedTranscriber struct {
	TranscribeCallCount int

	steps []ScriptStep
	mutex sync.Mutex
}

var _ transcription.Transcriber = &ScriptedTranscriber{}

func NewScriptedTranscriber(steps []ScriptStep) *ScriptedTranscriber {
	return &ScriptedTranscriber{steps: steps}
}

func NewScriptedTranscriberFromYAML(contents []byte) (*ScriptedTranscriber, error) {
	var parsed script

	err := yaml.Unmarshal(contents, &parsed)
	if err != nil {
		return nil, verr.WrapError(err, "Parsing transcriber script")
	}

	return NewScriptedTranscriber(parsed.Results), nil
}

func NewScriptedTranscriberFromFile(path string) (*ScriptedTranscriber, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, verr.WrapError(err, "Reading transcriber script")
	}

	return NewScriptedTranscriberFromYAML(contents)
}

func (t *ScriptedTranscriber) Transcribe(_ context.Context, _ audio.Capture) (transcription.Result, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.TranscribeCallCount++

	if len(t.steps) == 0 {
		return transcription.Result{}, verr.Errorf("Transcriber script exhausted after %d calls", t.TranscribeCallCount-1)
	}

	step := t.steps[0]
	t.steps = t.steps[1:]

	if step.Error != "" {
		return transcription.Result{}, verr.Error(step.Error)
	}

	return transcription.Result{
		Text:       step.Text,
		Language:   step.Language,
		Confidence: step.Confidence,
	}, nil
}
