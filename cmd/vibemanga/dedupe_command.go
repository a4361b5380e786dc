package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/dedupe"
	"github.com/ImTheFrack/VibeManga/internal/scanner"
)

func newDedupeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedupe [library-root]",
		Short: "Report ID, content, and fuzzy-name duplicate candidates in a library",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			root, err := resolveRoot(cfg, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sink, finish := newCLISink(out, "scan")
			defer finish()

			diag := corefail.NewDiagnostics()
			sc := scanner.New(logger)
			lib, err := loadLibrary(cmd.Context(), cfg, sc, root, false, sink, diag)
			if err != nil {
				return err
			}

			dedupeSink, dedupeFinish := newCLISink(out, "dedupe")
			defer dedupeFinish()

			report := dedupe.Run(cmd.Context(), lib, dedupe.Options{
				FuzzyThreshold: cfg.Matching.DedupeFuzzyThreshold,
				PoolSize:       cfg.Workers.DedupePoolSize,
			}, dedupeSink, logger)

			fmt.Fprintf(out, "Scanned %d series, %d with an external ID, %d distinct IDs\n",
				report.IDCollisions.SeriesScanned, report.IDCollisions.SeriesWithID, report.IDCollisions.DistinctIDSeen)

			idRows := make([][]string, 0, len(report.IDCollisions.Groups))
			for _, g := range report.IDCollisions.Groups {
				idRows = append(idRows, []string{strconv.FormatInt(g.ID, 10), strconv.Itoa(len(g.Series)), fmt.Sprintf("%.2f", g.Confidence)})
			}
			fmt.Fprintln(out, "ID collisions:")
			fmt.Fprintln(out, renderTable([]string{"External ID", "Series Count", "Confidence"}, idRows, []columnAlignment{alignLeft, alignRight, alignRight}))

			contentRows := make([][]string, 0, len(report.ContentCollisions))
			for _, g := range report.ContentCollisions {
				contentRows = append(contentRows, []string{humanize.Bytes(uint64(g.SizeBytes)), strconv.Itoa(len(g.Volumes)), fmt.Sprintf("%.2f", g.Confidence)})
			}
			fmt.Fprintln(out, "Content collisions:")
			fmt.Fprintln(out, renderTable([]string{"Size", "Volume Count", "Confidence"}, contentRows, []columnAlignment{alignRight, alignRight, alignRight}))

			fuzzyRows := make([][]string, 0, len(report.FuzzyCollisions))
			for _, f := range report.FuzzyCollisions {
				fuzzyRows = append(fuzzyRows, []string{f.A.FolderName, f.B.FolderName, fmt.Sprintf("%.3f", f.Score)})
			}
			fmt.Fprintln(out, "Fuzzy name collisions:")
			fmt.Fprintln(out, renderTable([]string{"Series A", "Series B", "Score"}, fuzzyRows, []columnAlignment{alignLeft, alignLeft, alignRight}))

			return nil
		},
	}
	return cmd
}
