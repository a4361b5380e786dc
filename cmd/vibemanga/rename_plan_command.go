package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/renamer"
	"github.com/ImTheFrack/VibeManga/internal/scanner"
)

func newRenamePlanCommand(ctx *commandContext) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "rename-plan [library-root]",
		Short: "Build (and optionally apply) a rename plan for every series in a library",
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

			opts := renamer.Options{
				PreferredTitle:         cfg.Renamer.PreferredTitle,
				AllowSuffixOnCollision: cfg.Renamer.AllowSuffixOnCollision,
			}
			pOpts := parserOptions(cfg)

			var fullPlan renamer.Plan
			for _, main := range lib.Categories {
				for _, sub := range main.Categories {
					for _, series := range sub.Series {
						fullPlan = append(fullPlan, renamer.BuildPlan(series, opts, pOpts)...)
					}
				}
			}

			rows := make([][]string, 0, len(fullPlan))
			for _, entry := range fullPlan {
				status := "planned"
				if entry.Collision {
					status = "collision"
				}
				rows = append(rows, []string{string(entry.Kind), entry.OldPath, entry.NewPath, safetyLabel(entry.Safety), status})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Kind", "Old Path", "New Path", "Safety", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))

			if !apply {
				fmt.Fprintf(out, "%d entries planned; re-run with --apply to execute\n", len(fullPlan))
				return nil
			}

			applied, err := renamer.Apply(fullPlan)
			fmt.Fprintf(out, "Applied %d/%d entries\n", applied, len(fullPlan))
			return err
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Execute the rename plan instead of only printing it")
	return cmd
}

func safetyLabel(s renamer.Safety) string {
	switch s {
	case renamer.SafetyCosmetic:
		return "cosmetic"
	case renamer.SafetyStandard:
		return "standard"
	case renamer.SafetyUncertain:
		return "uncertain"
	default:
		return "unknown"
	}
}
