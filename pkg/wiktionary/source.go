package wiktionary

import (
	"compress/bzip2"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// openLocalPossiblyCompressed opens a local dump file and wraps it in a
// bzip2 decompressor when the path ends with ".bz2". The returned
// ReadCloser always closes the underlying file.
func openLocalPossiblyCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".bz2") {
		return struct {
			io.Reader
			io.Closer
		}{
			Reader: bzip2.NewReader(f),
			Closer: f,
		}, nil
	}

	return f, nil
}

// isHTTPURL returns true if src looks like an HTTP or HTTPS URL.
func isHTTPURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// hasBZ2SuffixURL reports whether a URL string should be treated as a
// .bz2 resource, ignoring query or fragment parts.
func hasBZ2SuffixURL(raw string) bool {
	lower := strings.ToLower(raw)
	if idx := strings.IndexAny(lower, "?#"); idx >= 0 {
		lower = lower[:idx]
	}
	return strings.HasSuffix(lower, ".bz2")
}

// openHTTPPossiblyCompressed performs an HTTP GET and returns a
// streaming reader, wrapping the response body in a bzip2 decompressor
// when the URL indicates a .bz2 payload. No temporary files are
// created: the dump is decoded directly from the response stream.
func openHTTPPossiblyCompressed(url string) (io.ReadCloser, error) {
	resp, err := http.Get(url) // #nosec G107 - URL is user-provided by design.
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, fmt.Errorf("HTTP GET %s: unexpected status %s", url, resp.Status)
	}

	if hasBZ2SuffixURL(url) {
		return struct {
			io.Reader
			io.Closer
		}{
			Reader: bzip2.NewReader(resp.Body),
			Closer: resp.Body,
		}, nil
	}

	return resp.Body, nil
}

// openSource opens either a local file or an HTTP/HTTPS URL and wraps
// it in a bzip2 decompressor when appropriate. The returned ReadCloser
// must be closed by the caller.
func openSource(pathOrURL string) (io.ReadCloser, error) {
	if isHTTPURL(pathOrURL) {
		return openHTTPPossiblyCompressed(pathOrURL)
	}
	return openLocalPossiblyCompressed(pathOrURL)
}
