package retrystrategy

import (
	"code.cloudfoundry.org/clock"
	"github.com/jpillora/backoff"

	vlog "github.com/echolane/voice-utils/logger"
)

type backoffRetryStrategy struct {
	maxAttempts int
	backoff     *backoff.Backoff
	retryable   Retryable
	timeService clock.Clock
	logger      vlog.Logger
	logTag      string
}

// NewBackoffRetryStrategy retries with an increasing delay between attempts.
// The backoff schedule is reset on every Try so strategies can be reused.
func NewBackoffRetryStrategy(
	maxAttempts int,
	b *backoff.Backoff,
	retryable Retryable,
	timeService clock.Clock,
	logger vlog.Logger,
) RetryStrategy {
	return &backoffRetryStrategy{
		maxAttempts: maxAttempts,
		backoff:     b,
		retryable:   retryable,
		timeService: timeService,
		logger:      logger,
		logTag:      "backoffRetryStrategy",
	}
}

func (s *backoffRetryStrategy) Try() error {
	var err error
	var isRetryable bool

	s.backoff.Reset()

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
			delay := s.backoff.Duration()
			s.logger.Debug(s.logTag, "Waiting %s before attempt #%d", delay, i+1)
			s.timeService.Sleep(delay)
		}
	}

	return err
}
