package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rill/internal/diag"
	"rill/internal/diagfmt"
	"rill/internal/driver"
	"rill/internal/project"
	"rill/internal/source"
)

var (
	checkFormat  string
	checkJobs    int
	checkNoCache bool
)

var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate attributes in a file or directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFormat, "format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0, "number of files checked concurrently (0 = all CPUs)")
	checkCmd.Flags().BoolVar(&checkNoCache, "no-cache", false, "disable the diagnostics disk cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	startDir := target
	if !info.IsDir() {
		startDir = filepath.Dir(target)
	}
	manifest, _, err := project.Load(startDir)
	if err != nil {
		return err
	}

	opts := driver.Options{Jobs: checkJobs}
	denyWarnings := false
	if manifest != nil {
		opts.MaxDiagnostics = manifest.Config.Check.MaxDiagnostics
		denyWarnings = manifest.Config.Check.DenyWarnings
	}
	if flagMax, _ := cmd.Flags().GetInt("max-diagnostics"); flagMax > 0 {
		opts.MaxDiagnostics = flagMax
	}
	if !checkNoCache {
		// A broken cache dir only disables memoization.
		if cache, err := driver.OpenDiskCache("rill"); err == nil {
			opts.Cache = cache
		}
	}

	fileSet, bag, err := runDriver(cmd, target, info.IsDir(), opts)
	if err != nil {
		return err
	}
	bag.Sort()

	useColor := colorEnabled(cmd, os.Stdout)
	color.NoColor = !useColor
	switch checkFormat {
	case "pretty":
		prettyOpts := diagfmt.DefaultPrettyOpts()
		prettyOpts.Color = useColor
		prettyOpts.BaseDir = fileSet.BaseDir()
		diagfmt.Pretty(os.Stdout, bag, fileSet, prettyOpts)
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			BaseDir:          fileSet.BaseDir(),
		}
		if err := diagfmt.WriteJSON(os.Stdout, bag, fileSet, jsonOpts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", checkFormat)
	}

	if bag.HasErrors() || (denyWarnings && bag.HasWarnings()) {
		// Diagnostics were already rendered; exit non-zero without the
		// extra cobra error line.
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return fmt.Errorf("check failed")
	}
	return nil
}

func runDriver(cmd *cobra.Command, target string, isDir bool, opts driver.Options) (*source.FileSet, *diag.Bag, error) {
	if isDir {
		fileSet, results, err := driver.CheckDir(cmd.Context(), target, opts)
		if err != nil {
			return nil, nil, err
		}
		return fileSet, driver.MergeBags(results), nil
	}

	fileSet := source.NewFileSetWithBase(filepath.Dir(target))
	res, err := driver.CheckFile(fileSet, target, opts)
	if err != nil {
		return nil, nil, err
	}
	return fileSet, res.Bag, nil
}
