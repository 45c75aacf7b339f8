package fakes_test

import (
	"context"
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/echolane/voice-utils/audio"
	"github.com/echolane/voice-utils/transcription"
	. "github.com/echolane/voice-utils/transcription/fakes"
)

var _ = Describe("FakeTranscriber", func() {
	var (
		transcriber *FakeTranscriber
		capture     audio.Capture
	)

	BeforeEach(func() {
		transcriber = NewFakeTranscriber()
		capture = audio.NewCapture([]byte{0x01, 0x02}, audio.DefaultFormat())
	})

	It("returns exactly the configured result", func() {
		configured := transcription.Result{
			Text:       "hello world",
			Language:   "en",
			Confidence: 0.87,
		}
		transcriber.TranscribeResult = configured

		result, err := transcriber.Transcribe(context.Background(), capture)
		Expect(err).ToNot(HaveOccurred())
		Expect(result).To(Equal(configured))
	})

	It("returns exactly the configured error and a zero result", func() {
		transcriber.TranscribeResult = transcription.Result{Text: "should not leak"}
		transcriber.TranscribeErr = errors.New("quota exceeded")

		result, err := transcriber.Transcribe(context.Background(), capture)
		Expect(err).To(MatchError("quota exceeded"))
		Expect(result).To(Equal(transcription.Result{}))
	})

	It("increments the call count exactly once per invocation", func() {
		transcriber.Transcribe(context.Background(), capture)
		transcriber.Transcribe(context.Background(), capture)

		Expect(transcriber.TranscribeCallCount).To(Equal(2))
	})

	It("records the captures it was given", func() {
		other := audio.NewCapture([]byte{0x03}, audio.DefaultFormat())

		transcriber.Transcribe(context.Background(), capture)
		transcriber.Transcribe(context.Background(), other)

		Expect(transcriber.TranscribeCaptures).To(Equal([]audio.Capture{capture, other}))
	})

	It("pops queued results and errors in order", func() {
		transcriber.TranscribeResults = []transcription.Result{
			{Text: "first"},
			{Text: "second"},
		}
		transcriber.TranscribeErrs = []error{nil, errors.New("flaky")}

		result, err := transcriber.Transcribe(context.Background(), capture)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Text).To(Equal("first"))

		_, err = transcriber.Transcribe(context.Background(), capture)
		Expect(err).To(MatchError("flaky"))
	})

	It("leaves queued results for later calls while a stub is set", func() {
		transcriber.TranscribeResults = []transcription.Result{{Text: "queued"}}
		transcriber.TranscribeStub = func(context.Context, audio.Capture) (transcription.Result, error) {
			return transcription.Result{Text: "stubbed"}, nil
		}

		result, err := transcriber.Transcribe(context.Background(), capture)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Text).To(Equal("stubbed"))

		transcriber.TranscribeStub = nil

		result, err = transcriber.Transcribe(context.Background(), capture)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Text).To(Equal("queued"))
	})

	It("defers to the stub when one is set", func() {
		transcriber.TranscribeStub = func(_ context.Context, c audio.Capture) (transcription.Result, error) {
			return transcription.Result{Text: string(c.PCM)}, nil
		}

		result, err := transcriber.Transcribe(context.Background(), audio.NewCapture([]byte("hi"), audio.DefaultFormat()))
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Text).To(Equal("hi"))
		Expect(transcriber.TranscribeCallCount).To(Equal(1))
	})

	It("counts concurrent invocations exactly once each", func() {
		const callers = 50

		var wg sync.WaitGroup
		wg.Add(callers)
		for i := 0; i < callers; i++ {
			go func() {
				defer wg.Done()
				transcriber.Transcribe(context.Background(), capture)
			}()
		}
		wg.Wait()

		Expect(transcriber.TranscribeCallCount).To(Equal(callers))
	})
})
