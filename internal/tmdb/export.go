package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// ExportFileName returns the daily id export filename for day, e.g.
// movie_ids_09_01_2026.json.gz.
func ExportFileName(day time.Time) string {
	return fmt.Sprintf("movie_ids_%s.json.gz", day.Format("01_02_2006"))
}

// DownloadExport fetches the daily movie id export for day into dir and
// returns the path written. The download streams through a temp file and
// is renamed into place only when complete.
func (c *Client) DownloadExport(ctx context.Context, dir string, day time.Time) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit error: %w", err)
	}

	name := ExportFileName(day)
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	fullURL := c.exportURL + "/" + name + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %d", name, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(dir, ".export-*.json.gz")
	if err != nil {
		return "", fmt.Errorf("create temp export: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close export: %w", err)
	}

	dest := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("publish export %s: %w", dest, err)
	}
	return dest, nil
}
