package driver

import (
	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/parser"
	"rill/internal/sema"
	"rill/internal/source"
)

// FileResult holds everything the front end produced for one file.
type FileResult struct {
	Path   string
	FileID source.FileID
	File   *ast.File
	Bag    *diag.Bag
}

// Options configure a check run.
type Options struct {
	// MaxDiagnostics caps the number of diagnostics collected per file.
	MaxDiagnostics int
	// Jobs bounds the number of files checked concurrently; <= 0 means
	// one worker per CPU.
	Jobs int
	// Cache, when set, skips work for files whose content hash has been
	// seen before.
	Cache *DiskCache
}

const defaultMaxDiagnostics = 100

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// checkLoaded runs lex/parse/check for an already loaded file and collects
// diagnostics into a fresh bag.
func checkLoaded(fileSet *source.FileSet, fileID source.FileID, opts Options) FileResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := diag.BagReporter{Bag: bag}
	interner := source.NewInterner()

	file := fileSet.Get(fileID)
	tree := parser.ParseFile(file, parser.Options{
		Reporter: reporter,
		Interner: interner,
	})
	sema.Check(tree, sema.Options{
		Reporter: reporter,
		Interner: interner,
	})

	return FileResult{
		Path:   file.Path,
		FileID: fileID,
		File:   tree,
		Bag:    bag,
	}
}

// CheckFile loads and checks a single file.
func CheckFile(fileSet *source.FileSet, path string, opts Options) (FileResult, error) {
	fileID, err := fileSet.Load(path)
	if err != nil {
		return FileResult{}, err
	}
	return checkLoaded(fileSet, fileID, opts), nil
}
