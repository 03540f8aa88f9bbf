package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// policy expresses s as a backoff schedule bound to ctx.
func policy(ctx context.Context, s retry.Strategy) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = s.Delay
	exp.Multiplier = s.Backoff
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0

	retries := uint64(0)
	if s.Attempts > 1 {
		retries = uint64(s.Attempts - 1)
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, retries), ctx)
}

// withRetry runs op until it succeeds, fails permanently or attempts run out.
// Only connection level failures are retried.
func withRetry[T any](ctx context.Context, s retry.Strategy, op func() (T, error)) (T, error) {
	return backoff.RetryWithData(func() (T, error) {
		res, err := op()
		if err != nil && !isTransient(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}, policy(ctx, s))
}

func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	code := string(pqCode(err))
	switch {
	case code == "":
		return false
	case pgerrcode.IsConnectionException(code):
		return true
	}

	switch code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.AdminShutdown:
		return true
	}
	return false
}

func pqCode(err error) pq.ErrorCode {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

const (
	codeUniqueViolation    pq.ErrorCode = pgerrcode.UniqueViolation
	codeExclusionViolation pq.ErrorCode = pgerrcode.ExclusionViolation
)
