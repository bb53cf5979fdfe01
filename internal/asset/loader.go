package asset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"motion-controller-rig/internal/scene"
)

// Loader fetches model files from HTTP(S) URLs or the local filesystem.
// Successful fetches are kept in Cache when it is non-nil; failures are not,
// so a later Load retries.
type Loader struct {
	Client *http.Client
	Cache  *Cache
}

func NewLoader() *Loader {
	return &Loader{Client: http.DefaultClient, Cache: NewCache()}
}

// Load fetches location and parses it into nodes created by graph.
// Cancelling ctx aborts an in-flight download.
func (l *Loader) Load(ctx context.Context, location string, graph scene.Graph) ([]scene.Node, error) {
	data, err := l.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	nodes, err := ParseModel(data, graph)
	if err != nil {
		return nil, fmt.Errorf("asset: parse %s: %w", location, err)
	}
	return nodes, nil
}

// Fetch returns the raw bytes at location.
func (l *Loader) Fetch(ctx context.Context, location string) ([]byte, error) {
	if l.Cache != nil {
		if data, ok := l.Cache.Get(location); ok {
			return data, nil
		}
	}
	data, err := l.fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	if l.Cache != nil {
		data = l.Cache.Put(location, data)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return l.fetchHTTP(ctx, location)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := strings.TrimPrefix(location, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: read %s: %w", path, err)
	}
	return data, nil
}

func (l *Loader) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("asset: request %s: %w", url, err)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("asset: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asset: get %s: status %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("asset: read body %s: %w", url, err)
	}
	return data, nil
}
