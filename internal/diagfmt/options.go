package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color       bool
	ShowNotes   bool
	ShowPreview bool
	BaseDir     string
}

// DefaultPrettyOpts is what the CLI uses unless flags say otherwise.
func DefaultPrettyOpts() PrettyOpts {
	return PrettyOpts{
		ShowNotes:   true,
		ShowPreview: true,
	}
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col to byte offsets
	IncludeNotes     bool
	BaseDir          string
}
