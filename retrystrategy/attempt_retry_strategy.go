package retrystrategy

import (
	"time"

	"code.cloudfoundry.org/clock"

	vlog "github.com/echolane/voice-utils/logger"
)

type attemptRetryStrategy struct {
	maxAttempts int
	delay       time.Duration
	retryable   Retryable
	timeService clock.Clock
	logger      vlog.Logger
	logTag      string
}

func NewAttemptRetryStrategy(
	maxAttempts int,
	delay time.Duration,
	retryable Retryable,
	timeService clock.Clock,
	logger vlog.Logger,
) RetryStrategy {
	return &attemptRetryStrategy{
		maxAttempts: maxAttempts,
		delay:       delay,
		retryable:   retryable,
		timeService: timeService,
		logger:      logger,
		logTag:      "attemptRetryStrategy",
	}
}

func (s *attemptRetryStrategy) Try() error {
	var err error
	var isRetryable bool

	for i := 0; i < s.maxAttempts; i++ {
		s.logger.Debug(s.logTag, "Making attempt #%d for %T", i, s.retryable)

		isRetryable, err = s.retryable.Attempt()
		if err == nil {
			return nil
		}

		if !isRetryable {
			return err
		}

		if i < s.maxAttempts-1 {
			s.timeService.Sleep(s.delay)
		}
	}

	return err
}
