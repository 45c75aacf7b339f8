package logger_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/echolane/voice-utils/logger"
)

var _ = Describe("Levelify", func() {
	It("parses level names case-insensitively", func() {
		level, err := Levelify("debug")
		Expect(err).ToNot(HaveOccurred())
		Expect(level).To(Equal(LevelDebug))

		level, err = Levelify("ERROR")
		Expect(err).ToNot(HaveOccurred())
		Expect(level).To(Equal(LevelError))

		level, err = Levelify("none")
		Expect(err).ToNot(HaveOccurred())
		Expect(level).To(Equal(LevelNone))
	})

	It("errors on unknown names", func() {
		_, err := Levelify("whisper")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Unknown LogLevel string 'whisper'"))
	})
})

var _ = Describe("Logger", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	Describe("Debug", func() {
		It("logs the tagged message at debug level", func() {
			logger := NewWriterLogger(LevelDebug, out)
			logger.Debug("recorder", "Started capture at %d Hz", 16000)

			Expect(out.String()).To(ContainSubstring("[recorder] DEBUG - Started capture at 16000 Hz"))
		})

		It("is dropped above debug level", func() {
			logger := NewWriterLogger(LevelInfo, out)
			logger.Debug("recorder", "Started capture")

			Expect(out.String()).To(BeEmpty())
		})
	})

	Describe("Error", func() {
		It("logs at every level except none", func() {
			logger := NewWriterLogger(LevelError, out)
			logger.Error("transcriber", "Attempt failed")

			Expect(out.String()).To(ContainSubstring("[transcriber] ERROR - Attempt failed"))
		})

		It("is dropped at none level", func() {
			logger := NewWriterLogger(LevelNone, out)
			logger.Error("transcriber", "Attempt failed")

			Expect(out.String()).To(BeEmpty())
		})
	})

	Describe("ErrorWithDetails", func() {
		It("attaches the details blob under the message", func() {
			logger := NewWriterLogger(LevelError, out)
			logger.ErrorWithDetails("transcriber", "Attempt failed", "raw provider response")

			Expect(out.String()).To(ContainSubstring("ERROR - Attempt failed"))
			Expect(out.String()).To(ContainSubstring("raw provider response"))
		})
	})

	Describe("ToggleForcedDebug", func() {
		It("forces debug output through a higher level", func() {
			logger := NewWriterLogger(LevelNone, out)
			logger.ToggleForcedDebug()
			logger.Debug("recorder", "Started capture")

			Expect(out.String()).To(ContainSubstring("DEBUG - Started capture"))
		})
	})
})

var _ = Describe("AsyncWriterLogger", func() {
	It("delivers queued messages on flush", func() {
		out := &bytes.Buffer{}
		logger := NewAsyncWriterLogger(LevelDebug, out)

		logger.Info("keychain", "Stored credential %s", "asr-api-key")
		Expect(logger.Flush()).To(Succeed())

		Expect(out.String()).To(ContainSubstring("[keychain] INFO - Stored credential asr-api-key"))
	})
})
