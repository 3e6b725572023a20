package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"rill/internal/diag"
	"rill/internal/source"
)

// SourceExt is the file extension the driver picks up when walking a
// directory.
const SourceExt = ".rl"

// listSourceFiles returns a sorted list of all source files under dir.
// Sorting keeps every later stage deterministic.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every source file under dir. Files are processed
// concurrently but results come back in sorted path order, so the
// aggregated diagnostic stream is identical run to run. Each file's own
// check remains a sequential pass.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Loading is sequential: FileIDs must be assigned in sorted order so
	// cross-file diagnostic sorting stays stable.
	fileIDs := make([]source.FileID, len(files))
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			return nil, nil, err
		}
		fileIDs[i] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkOne(fileSet, fileIDs[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}

// checkOne consults the disk cache before doing real work.
func checkOne(fileSet *source.FileSet, fileID source.FileID, opts Options) FileResult {
	file := fileSet.Get(fileID)
	if opts.Cache != nil {
		if bag, ok := opts.Cache.Lookup(file.Hash, fileID, opts.maxDiagnostics()); ok {
			return FileResult{
				Path:   file.Path,
				FileID: fileID,
				Bag:    bag,
			}
		}
	}

	res := checkLoaded(fileSet, fileID, opts)
	if opts.Cache != nil {
		// Best effort: a failed write only costs a recheck next run.
		_ = opts.Cache.Store(file.Hash, res.Bag)
	}
	return res
}

// MergeBags folds per-file bags into one, in result order.
func MergeBags(results []FileResult) *diag.Bag {
	total := 0
	for _, res := range results {
		total += res.Bag.Len()
	}
	merged := diag.NewBag(total)
	for _, res := range results {
		merged.Merge(res.Bag)
	}
	return merged
}
