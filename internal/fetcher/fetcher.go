// Package fetcher acquires input files for the cleaning pipeline from local
// paths, HTTP(S) URLs, and FTP servers.
package fetcher

import (
	"context"
	"net/url"
	"os"
	"path"

	"github.com/rotisserie/eris"
)

// Fetcher resolves one input source to a file name and its bytes. The name
// keeps its extension so the ingest dispatcher can route it.
type Fetcher struct {
	http *HTTPFetcher
	ftp  *FTPFetcher
}

// New creates a Fetcher with default HTTP and FTP settings.
func New() *Fetcher {
	return NewWithOptions(HTTPOptions{}, FTPOptions{})
}

// NewWithOptions creates a Fetcher with explicit HTTP and FTP settings.
func NewWithOptions(httpOpts HTTPOptions, ftpOpts FTPOptions) *Fetcher {
	return &Fetcher{
		http: NewHTTPFetcher(httpOpts),
		ftp:  NewFTPFetcher(ftpOpts),
	}
}

// Fetch reads the source. A source without a URL scheme is treated as a
// local path.
func (f *Fetcher) Fetch(ctx context.Context, src string) (string, []byte, error) {
	u, err := url.Parse(src)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Bare paths (and Windows drive letters) are local files.
		data, err := os.ReadFile(src)
		if err != nil {
			return "", nil, eris.Wrapf(err, "fetcher: read local file %q", src)
		}
		return path.Base(src), data, nil
	}

	switch u.Scheme {
	case "http", "https":
		data, err := f.http.Get(ctx, src)
		if err != nil {
			return "", nil, err
		}
		return path.Base(u.Path), data, nil
	case "ftp":
		data, err := f.ftp.Get(ctx, src)
		if err != nil {
			return "", nil, err
		}
		return path.Base(u.Path), data, nil
	default:
		return "", nil, eris.Errorf("fetcher: unsupported scheme %q", u.Scheme)
	}
}
