package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// HTTPImageFetcher loads images over HTTP, or from disk when the URL has
// no scheme. The logo is configured once, so a short timeout is fine.
type HTTPImageFetcher struct {
	client *http.Client
}

var _ ImageFetcher = (*HTTPImageFetcher)(nil)

func NewHTTPImageFetcher() *HTTPImageFetcher {
	return &HTTPImageFetcher{client: &http.Client{Timeout: 10 * time.Second}}
}

func (f *HTTPImageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return os.ReadFile(url)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
