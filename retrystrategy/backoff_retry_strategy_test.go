package retrystrategy_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/jpillora/backoff"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	vlog "github.com/echolane/voice-utils/logger"
	. "github.com/echolane/voice-utils/retrystrategy"
)

var _ = Describe("BackoffRetryStrategy", func() {
	var (
		timeService *fakeclock.FakeClock
		logger      vlog.Logger
		schedule    *backoff.Backoff
	)

	BeforeEach(func() {
		timeService = fakeclock.NewFakeClock(time.Now())
		logger = vlog.NewLogger(vlog.LevelNone)
		schedule = &backoff.Backoff{
			Min:    time.Second,
			Max:    4 * time.Second,
			Factor: 2,
			Jitter: false,
		}
	})

	It("doubles the delay between attempts", func() {
		retryable := newSimpleRetryable([]attemptOutcome{
			{isRetryable: true, err: errors.New("persistent")},
		})
		strategy := NewBackoffRetryStrategy(3, schedule, retryable, timeService, logger)

		tryErr := make(chan error)
		go func() {
			tryErr <- strategy.Try()
		}()

		timeService.WaitForWatcherAndIncrement(time.Second)
		timeService.WaitForWatcherAndIncrement(2 * time.Second)

		Eventually(tryErr).Should(Receive(MatchError("persistent")))
		Expect(retryable.Attempts).To(Equal(3))
	})

	It("resets the schedule between tries", func() {
		retryable := newSimpleRetryable([]attemptOutcome{
			{isRetryable: true, err: errors.New("first")},
			{isRetryable: true, err: nil},
		})
		strategy := NewBackoffRetryStrategy(3, schedule, retryable, timeService, logger)

		tryErr := make(chan error)
		go func() {
			tryErr <- strategy.Try()
		}()
		timeService.WaitForWatcherAndIncrement(time.Second)
		Eventually(tryErr).Should(Receive(BeNil()))

		retryable.outcomes = []attemptOutcome{
			{isRetryable: true, err: errors.New("second")},
			{isRetryable: true, err: nil},
		}
		go func() {
			tryErr <- strategy.Try()
		}()

		// the delay starts over at Min rather than continuing at 2s
		timeService.WaitForWatcherAndIncrement(time.Second)
		Eventually(tryErr).Should(Receive(BeNil()))
	})

	It("succeeds immediately without consulting the schedule", func() {
		retryable := newSimpleRetryable([]attemptOutcome{
			{isRetryable: true, err: nil},
		})
		strategy := NewBackoffRetryStrategy(3, schedule, retryable, timeService, logger)

		Expect(strategy.Try()).To(Succeed())
		Expect(retryable.Attempts).To(Equal(1))
	})
})
