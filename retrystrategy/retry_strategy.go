package retrystrategy

type RetryStrategy interface {
	Try() error
}

// Retryable is a single attempt of an operation. It reports whether a
// failure is worth retrying; the returned error is surfaced verbatim when
// retries are exhausted or the failure is final.
type Retryable interface {
	Attempt() (bool, error)
}

type retryableFunc func() (bool, error)

func NewRetryable(fn func() (bool, error)) Retryable {
	return retryableFunc(fn)
}

func (r retryableFunc) Attempt() (bool, error) {
	return r()
}
