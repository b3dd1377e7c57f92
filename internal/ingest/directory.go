// Package ingest feeds documents into the pipeline, either from a one-shot
// directory scan or a filesystem watch.
package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/pix-tracker/constants"
	processor "github.com/joseph-ayodele/pix-tracker/internal/pipeline"
)

type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Skipped   uint32
	Failed    uint32
}

// ProcessDirectory walks root, filters by the allowed receipt extensions,
// and fans the matching files out to the pipeline over a bounded worker
// pool. Per-file failures are reported in the results, not as an error.
func ProcessDirectory(ctx context.Context, proc *processor.Processor, root string, workers int, logger *slog.Logger) ([]processor.FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}

	var stats DirStats
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if isHidden(path) {
			if d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++
		ext := constants.NormalizeExt(filepath.Ext(path))
		if constants.MapExtToFormat(ext) == "" {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	logger.Info("directory scanned", "root", root, "matched", stats.Matched)

	var mu sync.Mutex
	results := make([]processor.FileResult, 0, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, path := range paths {
		g.Go(func() error {
			res := proc.ProcessDocument(ctx, path, "")
			mu.Lock()
			results = append(results, res)
			switch res.Status {
			case constants.ResultSuccess:
				stats.Succeeded++
			case constants.ResultSkipped:
				stats.Skipped++
			default:
				stats.Failed++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, stats, err
	}
	return results, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
