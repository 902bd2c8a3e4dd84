// Package upstream wraps raw HTTP calls to the data providers with the
// shared timeout/retry policy: a bounded exponential backoff applied only
// to timeout-class failures. Everything else fails fast.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const maxRetries = 2 // 3 attempts total

// Fetch issues the request built by newReq, retrying on read timeouts with
// doubling delay, and returns the response body. A non-2xx status is a
// terminal error. newReq is called per attempt so the request body can be
// replayed.
func Fetch(ctx context.Context, client *http.Client, newReq func() (*http.Request, error)) ([]byte, error) {
	var body []byte
	op := func() error {
		req, err := newReq()
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := client.Do(req.WithContext(ctx))
		if err != nil {
			if isTimeout(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return backoff.Permanent(fmt.Errorf("HTTP %d from %s", resp.StatusCode, req.URL.Host))
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.Multiplier = 2
	policy.RandomizationFactor = 0

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx))
	if err != nil {
		return nil, err
	}
	return body, nil
}

func isTimeout(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
