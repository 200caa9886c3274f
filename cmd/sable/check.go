package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sable/internal/diag"
	"sable/internal/diagfmt"
	"sable/internal/driver"
	"sable/internal/project"
	"sable/internal/source"
	"sable/internal/symbols"
)

var (
	checkManifest  string
	checkSymbols   string
	checkDebugInfo bool
	checkJobs      int
	checkFormat    string
	checkCache     bool
)

var errEmissionBlocked = errors.New("emission blocked: metadata name limits violated")

func init() {
	checkCmd.Flags().StringVar(&checkManifest, "manifest", "sable.toml", "project manifest path")
	checkCmd.Flags().StringVar(&checkSymbols, "symbols", "", "bound symbol snapshot (msgpack dump from the front end)")
	checkCmd.Flags().BoolVar(&checkDebugInfo, "debug-info", false, "validate debug-local names (overrides manifest [emit])")
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0, "validation parallelism (0 = GOMAXPROCS)")
	checkCmd.Flags().StringVar(&checkFormat, "format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().BoolVar(&checkCache, "cache", false, "reuse cached results for unchanged snapshots")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate emission names against binary format limits",
	Long: `Runs the pre-emission name pass: synthesized and declared metadata names,
debug-local names, and embedded-resource names/paths are checked against the
hard limits of the binary formats. Exits non-zero when emission would be
blocked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		colorMode, _ := cmd.Flags().GetString("color")
		maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")

		out := cmd.OutOrStdout()
		pretty := diagfmt.PrettyOpts{Color: useColor(colorMode, os.Stdout), ShowNotes: true}

		if checkFormat != "pretty" && checkFormat != "json" {
			return fmt.Errorf("unsupported format %q (must be pretty or json)", checkFormat)
		}

		// Manifest: resources and emit options.
		prjBag := diag.NewBag(64)
		reporter := diag.BagReporter{Bag: prjBag}
		manifest, err := project.Load(checkManifest, reporter)
		if err != nil {
			diagfmt.Pretty(out, prjBag, nil, pretty)
			return err
		}
		if !manifest.ValidateResources(reporter) {
			diagfmt.Pretty(out, prjBag, nil, pretty)
			return errors.New("invalid resource entries in manifest")
		}
		resources := manifest.Descriptors(filepath.Dir(checkManifest))

		debugInfo := manifest.Emit.DebugInfo
		if cmd.Flags().Changed("debug-info") {
			debugInfo = checkDebugInfo
		}

		// Symbol tree: front-end snapshot, or empty when checking only
		// resources.
		tab := symbols.NewTable(0)
		var snap *symbols.Snapshot
		if checkSymbols != "" {
			f, err := os.Open(checkSymbols)
			if err != nil {
				return err
			}
			snap, err = symbols.ReadSnapshot(f)
			_ = f.Close()
			if err != nil {
				return fmt.Errorf("%s: failed to read snapshot: %w", checkSymbols, err)
			}
			tab, err = snap.Table()
			if err != nil {
				return fmt.Errorf("%s: %w", checkSymbols, err)
			}
		}

		// Cache fast path: unchanged snapshot + same options.
		var cache *driver.DiskCache
		var cacheKey [32]byte
		if checkCache && snap != nil {
			if cache, err = driver.OpenDiskCache("sable"); err == nil {
				if digest, derr := snap.Digest(); derr == nil {
					cacheKey = driver.Key(digest, debugInfo)
					var payload driver.CheckPayload
					if hit, gerr := cache.Get(cacheKey, &payload); gerr == nil && hit {
						bag := driver.FromPayload(&payload)
						renderBag(out, bag, nil, checkFormat, pretty)
						if !payload.EmitAllowed {
							return errEmissionBlocked
						}
						return nil
					}
				}
			}
		}

		res, err := driver.CheckNames(cmd.Context(), tab, resources, driver.Options{
			DebugInfo:      debugInfo,
			Jobs:           checkJobs,
			MaxDiagnostics: maxDiags,
		})
		if err != nil {
			return err
		}

		if cache != nil {
			// Кэш — best effort: ошибки записи не влияют на результат.
			_ = cache.Put(cacheKey, driver.ToPayload(res, debugInfo))
		}

		renderBag(out, res.Bag, nil, checkFormat, pretty)
		if !res.EmitAllowed {
			return errEmissionBlocked
		}
		return nil
	},
}

func renderBag(out io.Writer, bag *diag.Bag, fs *source.FileSet, format string, pretty diagfmt.PrettyOpts) {
	if format == "json" {
		_ = diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
		return
	}
	diagfmt.Pretty(out, bag, fs, pretty)
}
