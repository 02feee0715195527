package fetcher

import (
	"context"
	"errors"
	"io"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	UserAgent    string
	Timeout      time.Duration
	MaxRetries   int
	RateLimiters map[string]*rate.Limiter
}

// DefaultRateLimiters returns per-host rate limiters for the data sources
// this module talks to. The Banco Central and Ipeadata APIs throttle
// aggressive clients, so they get conservative limits.
func DefaultRateLimiters() map[string]*rate.Limiter {
	return map[string]*rate.Limiter{
		"api.bcb.gov.br":            rate.NewLimiter(5, 5),
		"www.ipeadata.gov.br":       rate.NewLimiter(5, 5),
		"legis.senado.gov.br":       rate.NewLimiter(5, 5),
		"raw.githubusercontent.com": rate.NewLimiter(10, 10),
	}
}

// HTTPFetcher implements Fetcher using net/http with retry, rate limiting
// and a per-host circuit breaker.
type HTTPFetcher struct {
	client      *http.Client
	opts        HTTPOptions
	backoffBase time.Duration
	breaker     *hostBreaker

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a new HTTPFetcher with the given options. Zero
// option fields fall back to defaults.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "dadosbr/1.0"
	}
	limiters := DefaultRateLimiters()
	for host, lim := range opts.RateLimiters {
		limiters[host] = lim
	}
	transport := &http.Transport{
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     20,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		opts:        opts,
		backoffBase: time.Second,
		breaker:     newHostBreaker(5, 30*time.Second),
		limiters:    limiters,
	}
}

// limiterFor returns the limiter of the URL's host, creating and
// remembering one for hosts outside the default table.
func (f *HTTPFetcher) limiterFor(rawURL string) *rate.Limiter {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if lim, ok := f.limiters[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(20, 20)
	f.limiters[host] = lim
	return lim
}

func (f *HTTPFetcher) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	lim := f.limiterFor(req.URL.String())

	var lastErr error
	for attempt := 0; attempt < f.opts.MaxRetries; attempt++ {
		if err := lim.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "fetcher: rate limiter wait")
		}

		cloned := req.Clone(ctx)
		resp, err := f.client.Do(cloned)
		if err != nil {
			lastErr = err
			zap.L().Warn("http request failed, retrying",
				zap.String("url", req.URL.String()),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			f.backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			_ = resp.Body.Close()
			lastErr = eris.Errorf("http %d from %s", resp.StatusCode, req.URL.String())
			zap.L().Warn("retryable http status",
				zap.String("url", req.URL.String()),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt+1),
			)
			f.backoff(ctx, attempt)
			continue
		}

		return resp, nil
	}

	return nil, eris.Wrapf(ErrUnavailable, "fetcher: retries exhausted for %s: %v", req.URL.String(), lastErr)
}

func (f *HTTPFetcher) backoff(ctx context.Context, attempt int) {
	maxBackoff := 30 * time.Second
	d := time.Duration(float64(f.backoffBase) * math.Pow(2, float64(attempt)))
	if d > maxBackoff {
		d = maxBackoff
	}
	d += time.Duration(rand.Int63n(int64(d)/2 + 1))

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Download fetches the URL and returns the response body.
func (f *HTTPFetcher) Download(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: create request")
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", "*/*")

	host := req.URL.Host
	if !f.breaker.allow(host) {
		return nil, eris.Wrapf(ErrUnavailable, "fetcher: circuit open for %s", host)
	}

	resp, err := f.doWithRetry(ctx, req)
	if err != nil {
		// Only exhausted retries count against the host; a cancelled
		// context says nothing about upstream health.
		if errors.Is(err, ErrUnavailable) {
			f.breaker.failure(host)
		}
		return nil, err
	}
	f.breaker.success(host)

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, eris.Wrapf(ErrUnavailable, "fetcher: unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	return resp.Body, nil
}
