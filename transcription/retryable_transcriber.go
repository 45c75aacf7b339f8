package transcription

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/echolane/voice-utils/audio"
	verr "github.com/echolane/voice-utils/errors"
	vlog "github.com/echolane/voice-utils/logger"
	"github.com/echolane/voice-utils/retrystrategy"
	vuuid "github.com/echolane/voice-utils/uuid"
)

type retryableTranscriber struct {
	transcriber Transcriber
	maxAttempts int
	retryDelay  time.Duration
	timeService clock.Clock
	uuidGen     vuuid.Generator
	logger      vlog.Logger
	logTag      string
}

// NewRetryableTranscriber retries failed transcriptions up to maxAttempts,
// waiting retryDelay between attempts. Failures caused by a done context are
// not retried. Each Transcribe call is logged under a generated request id.
func NewRetryableTranscriber(
	transcriber Transcriber,
	maxAttempts int,
	retryDelay time.Duration,
	timeService clock.Clock,
	uuidGen vuuid.Generator,
	logger vlog.Logger,
) Transcriber {
	return &retryableTranscriber{
		transcriber: transcriber,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		timeService: timeService,
		uuidGen:     uuidGen,
		logger:      logger,
		logTag:      "retryableTranscriber",
	}
}

func (t *retryableTranscriber) Transcribe(ctx context.Context, capture audio.Capture) (Result, error) {
	requestID, err := t.uuidGen.Generate()
	if err != nil {
		return Result{}, verr.WrapError(err, "Generating transcription request id")
	}

	t.logger.Debug(t.logTag, "[%s] Transcribing %s of audio", requestID, capture.Duration())

	var result Result
	attempt := 0

	retryable := retrystrategy.NewRetryable(func() (bool, error) {
		attempt++

		var attemptErr error
		result, attemptErr = t.transcriber.Transcribe(ctx, capture)
		if attemptErr == nil {
			return false, nil
		}

		if ctx.Err() != nil {
			return false, attemptErr
		}

		t.logger.Warn(t.logTag, "[%s] Attempt %d failed: %s", requestID, attempt, attemptErr.Error())
		return true, attemptErr
	})

	strategy := retrystrategy.NewAttemptRetryStrategy(t.maxAttempts, t.retryDelay, retryable, t.timeService, t.logger)

	if err := strategy.Try(); err != nil {
		return Result{}, verr.WrapErrorf(err, "Transcribing capture (request %s)", requestID)
	}

	return result, nil
}
