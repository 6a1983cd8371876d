package helpers

import "context"

type RetryFunc func() error

// Retry calls f until it succeeds, up to retryAttempts times, giving up
// early when the context is done. The last error is returned.
func Retry(ctx context.Context, f RetryFunc, retryAttempts int) error {
	var err error

	for i := 0; i < retryAttempts; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err = f()
		if err == nil {
			return nil
		}
	}

	return err
}
