// Package fetcher downloads remote resources over HTTP with retry and
// per-host rate limiting, and loads tabular payloads into dataframes.
package fetcher

import (
	"context"
	"io"

	"github.com/rotisserie/eris"
)

// ErrUnavailable marks terminal failures to retrieve or decode a remote
// resource: exhausted retries, unexpected status codes, malformed payloads.
var ErrUnavailable = eris.New("remote resource unavailable")

// Fetcher downloads resources over HTTP.
type Fetcher interface {
	// Download fetches the URL and returns the response body. The caller
	// owns the returned reader and must close it.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}
