// Package scraper provides functionality to fetch remote datasets and cache them locally
package scraper

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"go.uber.org/zap"
)

// ErrFetch indicates a remote dataset could not be downloaded
var ErrFetch = errors.New("fetch failed")

// DefaultTimeout is used when no HTTP timeout is configured
const DefaultTimeout = 30 * time.Second

// Fetcher downloads datasets over HTTP into a cache directory
type Fetcher struct {
	client   *http.Client
	logger   *zap.Logger
	cacheDir string
	refresh  bool
}

// NewFetcher creates a Fetcher that stores downloads in cacheDir.
// When refresh is set, cached files are downloaded again.
func NewFetcher(logger *zap.Logger, cacheDir string, timeout time.Duration, refresh bool) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "cricket-analyzer")
	}
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
		cacheDir: cacheDir,
		refresh:  refresh,
	}
}

// IsRemote reports whether location is an http or https URL
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Resolve returns a local path for location, downloading it first if it is a URL
func (f *Fetcher) Resolve(ctx context.Context, location string) (string, error) {
	if !IsRemote(location) {
		return location, nil
	}

	localPath, err := f.cachePath(location)
	if err != nil {
		return "", err
	}

	if !f.refresh {
		if _, err := os.Stat(localPath); err == nil {
			f.logger.Info("using cached dataset", zap.String("url", location), zap.String("path", localPath))
			return localPath, nil
		}
	}

	if err := os.MkdirAll(f.cacheDir, 0755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}

	content, err := f.FetchURL(ctx, location)
	if err != nil {
		return "", err
	}

	if err := SaveContentToFile(localPath, content); err != nil {
		return "", fmt.Errorf("saving %s: %w", localPath, err)
	}
	f.logger.Info("saved dataset", zap.String("path", localPath), zap.Int("bytes", len(content)))

	return localPath, nil
}

// FetchURL downloads the content at rawURL, decoding compressed responses
func (f *Fetcher) FetchURL(ctx context.Context, rawURL string) ([]byte, error) {
	f.logger.Info("fetching URL", zap.String("url", rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrFetch, err)
	}
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	f.logger.Debug("HTTP response",
		zap.Int("status", resp.StatusCode),
		zap.String("content_type", resp.Header.Get("Content-Type")),
		zap.String("content_encoding", resp.Header.Get("Content-Encoding")))
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	reader, err := decodeBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrFetch, err)
	}

	return body, nil
}

func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		r, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return r, nil
	case "deflate":
		return flate.NewReader(resp.Body), nil
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	default:
		return io.NopCloser(resp.Body), nil
	}
}

// cachePath maps a URL onto a file in the cache directory. The name carries a
// digest of the full URL so distinct URLs never share a file, and ends with the
// URL's base name so the loader can detect the format.
func (f *Fetcher) cachePath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid URL %q: %v", ErrFetch, rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		name = "dataset.csv"
	}
	sum := sha256.Sum256([]byte(u.String()))
	digest := hex.EncodeToString(sum[:])[:12]
	return filepath.Join(f.cacheDir, u.Hostname()+"_"+digest+"_"+name), nil
}

// SaveContentToFile saves content to a file
func SaveContentToFile(filename string, content []byte) error {
	return os.WriteFile(filename, content, 0644)
}
