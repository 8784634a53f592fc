package fetcher

import (
	"context"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	MaxBytes   int64
	Limiter    *rate.Limiter
}

// HTTPFetcher downloads input files over HTTP with rate limiting and retry.
type HTTPFetcher struct {
	client  *http.Client
	opts    HTTPOptions
	limiter *rate.Limiter
}

// NewHTTPFetcher creates an HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "purity-cli/1.0"
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = 256 << 20
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(10, 10)
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		opts:    opts,
		limiter: limiter,
	}
}

// Get downloads the URL body, retrying transient failures and 5xx/429
// responses with jittered exponential backoff.
func (f *HTTPFetcher) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: build request")
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	var lastErr error
	for attempt := range f.opts.MaxRetries {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "fetcher: rate limiter wait")
		}

		resp, err := f.client.Do(req.Clone(ctx))
		if err != nil {
			lastErr = err
			zap.L().Warn("fetcher: http request failed, retrying",
				zap.String("url", rawURL),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			f.backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			_ = resp.Body.Close()
			lastErr = eris.Errorf("fetcher: http %d from %s", resp.StatusCode, rawURL)
			f.backoff(ctx, attempt)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, eris.Errorf("fetcher: http %d from %s", resp.StatusCode, rawURL)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBytes))
		closeErr := resp.Body.Close()
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: read response body")
		}
		if closeErr != nil {
			return nil, eris.Wrap(closeErr, "fetcher: close response body")
		}
		return data, nil
	}

	return nil, eris.Wrapf(lastErr, "fetcher: giving up after %d attempts", f.opts.MaxRetries)
}

// backoff sleeps for an exponentially increasing, jittered interval.
func (f *HTTPFetcher) backoff(ctx context.Context, attempt int) {
	base := time.Duration(math.Pow(2, float64(attempt))) * 500 * time.Millisecond
	jitter := time.Duration(rand.Int64N(int64(base / 2)))
	select {
	case <-time.After(base + jitter):
	case <-ctx.Done():
	}
}
