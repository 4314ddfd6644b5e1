package ingestion

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MiroBartanus/business-days-sk/internal/logger"
	"github.com/MiroBartanus/business-days-sk/internal/storage"
)

const (
	filePattern    = "*.csv"
	maxParallelism = 8
)

// Registrar makes persisted holidays visible to lookups.
// *holiday.Calendar satisfies it.
type Registrar interface {
	AddHoliday(day int, month time.Month, name string) error
}

// ProcessDirectory imports every custom holiday file in dir.
//
//   - dir:      directory containing "*.csv" files (';' separated, header "DenMesiac;Nazov").
//   - repo:     where parsed holidays are stored.
//   - reg:      calendar the stored holidays are registered on. May be nil.
//   - parallel: files processed at once; <=0 means min(8, NumCPU), capped at 8.
//
// Every file is validated completely before anything of it is stored, so a
// bad row rejects its whole file. On the first failing file the remaining
// ones are canceled; files already done stay imported.
//
// Returns the number of holidays imported.
func ProcessDirectory(ctx context.Context, dir string, repo storage.CustomHolidayRepository, reg Registrar, parallel int) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, filePattern))
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", dir, err)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no holiday files (%s) in %s", filePattern, dir)
	}
	sort.Strings(files)

	maxParallel := maxParallelism
	if parallel > 0 {
		if parallel < maxParallel {
			maxParallel = parallel
		}
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	log := logger.Component("ingestion")
	log.Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", maxParallel).Msg("import start")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)
	var imported atomic.Int64

	for i, file := range files {
		idx := i
		f := file
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			// a sibling failed; stop scheduling and report its error below
		}
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)

			n, err := importFile(gctx, f, repo, reg)
			if err != nil {
				log.Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			imported.Add(int64(n))
			log.Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Int("rows", n).Dur("elapsed", time.Since(start)).Msg("file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(imported.Load()), err
	}
	if err := ctx.Err(); err != nil {
		return int(imported.Load()), err
	}
	return int(imported.Load()), nil
}

// importFile parses one file, stores it in a single batch and registers
// every row on reg.
func importFile(ctx context.Context, path string, repo storage.CustomHolidayRepository, reg Registrar) (int, error) {
	hs, err := parseFile(ctx, path)
	if err != nil {
		return 0, err
	}
	if len(hs) == 0 {
		return 0, nil
	}
	if err := repo.InsertCustomHolidaysBatch(ctx, hs); err != nil {
		return 0, fmt.Errorf("store: %w", err)
	}
	if reg != nil {
		for _, h := range hs {
			if err := reg.AddHoliday(h.Day, time.Month(h.Month), h.Name); err != nil {
				return 0, fmt.Errorf("register %s: %w", h.Spec(), err)
			}
		}
	}
	return len(hs), nil
}
