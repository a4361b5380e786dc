package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/index"
	"github.com/ImTheFrack/VibeManga/internal/scanner"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [library-root]",
		Short: "Build the identity index for a library and report collisions",
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

			idx := index.Build(lib, logger, diag)
			fmt.Fprintf(out, "Indexed %d series, %d identities\n", lib.TotalSeriesCount(), len(idx.Identities()))

			if n := diag.Len(); n > 0 {
				fmt.Fprintf(out, "%d diagnostic(s) recorded (includes index collisions, if any)\n", n)
				for _, entry := range diag.Entries() {
					if entry.Kind == "index_collision" {
						fmt.Fprintf(out, "  - %s\n", entry.Message)
					}
				}
			}
			return nil
		},
	}
	return cmd
}
