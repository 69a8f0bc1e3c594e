package model

import "context"

// ExtraFile is a file shipped inside a packed book next to the pages,
// such as the ambient track.
type ExtraFile struct {
	Data         []byte
	Path         string
	ManifestItem ManifestItem
}

// Fetcher retrieves a catalog path from a remote asset host.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}
