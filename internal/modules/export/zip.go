package export

import (
	"archive/zip"
	"context"
	"fmt"
	"io"

	"github.com/reusedev/mockup-hub/internal/modules/logs"
	"github.com/reusedev/mockup-hub/internal/modules/store"
)

// FetchFunc resolves one result's image bytes.
type FetchFunc func(ctx context.Context, result store.Result) ([]byte, error)

type Packager struct {
	fetch FetchFunc
}

func NewPackager(fetch FetchFunc) *Packager {
	return &Packager{fetch: fetch}
}

// Fetch resolves a single result's bytes through the packager's fetch chain.
func (p *Packager) Fetch(ctx context.Context, result store.Result) ([]byte, error) {
	return p.fetch(ctx, result)
}

// Archive writes one zip with every result's image. Any single fetch failure
// aborts the whole export, there is no partial archive.
func (p *Packager) Archive(ctx context.Context, results []store.Result, w io.Writer) error {
	zw := zip.NewWriter(w)
	ordinals := make(map[string]int)
	for _, result := range results {
		data, err := p.fetch(ctx, result)
		if err != nil {
			logs.Logger.Error().Err(err).
				Str("result_id", result.Id).
				Str("medium", result.Medium.String()).
				Msg("export fetch failed, aborting archive")
			return fmt.Errorf("fetch %s: %w", result.Id, err)
		}
		ordinals[result.Medium.String()]++
		name := fmt.Sprintf("%s-%d.png", result.Medium.String(), ordinals[result.Medium.String()])
		f, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
	}
	return zw.Close()
}
