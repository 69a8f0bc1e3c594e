// Package downloader mirrors catalog assets from a remote host into the local
// asset directory.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"lore-clans/model"
	"lore-clans/utils"
)

// Remote fetches catalog paths relative to a base URL.
type Remote struct {
	client  *utils.RestyClient
	baseURL string
}

func NewRemote(client *utils.RestyClient, baseURL string) (*Remote, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("mirror base url is required")
	}
	return &Remote{client: client, baseURL: baseURL}, nil
}

func (r *Remote) Fetch(ctx context.Context, assetPath string) ([]byte, error) {
	url := r.baseURL + "/" + assetPath
	resp, err := r.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("failed to get %s: %v", url, resp.Status())
	}
	return resp.Body(), nil
}

// Report counts what a sync did.
type Report struct {
	Downloaded int
	Skipped    int
}

// Sync downloads every asset missing from destDir. Files already present are
// left alone. It stops at the first failure.
func Sync(ctx context.Context, fetcher model.Fetcher, assets []string, destDir string, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var report Report
	for _, assetPath := range assets {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !fs.ValidPath(assetPath) {
			return report, fmt.Errorf("invalid asset path %q", assetPath)
		}
		fileName := filepath.Join(destDir, filepath.FromSlash(assetPath))
		_, err := os.Stat(fileName)
		if err == nil {
			report.Skipped++
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return report, fmt.Errorf("failed to stat %s: %w", fileName, err)
		}

		logger.Info("downloading asset", "path", assetPath)
		data, err := fetcher.Fetch(ctx, assetPath)
		if err != nil {
			return report, err
		}
		if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
			return report, fmt.Errorf("failed to create asset directory: %w", err)
		}
		if err := os.WriteFile(fileName, data, 0644); err != nil {
			return report, fmt.Errorf("failed to write asset: %w", err)
		}
		report.Downloaded++
	}
	return report, nil
}
