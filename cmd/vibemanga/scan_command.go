package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var rescan bool

	cmd := &cobra.Command{
		Use:   "scan [library-root]",
		Short: "Scan a library root and report its category/series/volume structure",
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
			lib, err := loadLibrary(cmd.Context(), cfg, sc, root, rescan, sink, diag)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Root: %s\n", lib.RootPath)
			fmt.Fprintf(out, "Categories: %d  Series: %d  Volumes: %d  Size: %s\n",
				len(lib.Categories), lib.TotalSeriesCount(), lib.TotalVolumeCount(), humanize.Bytes(uint64(lib.TotalSizeBytes())))

			rows := make([][]string, 0, len(lib.Categories))
			for _, main := range lib.Categories {
				rows = append(rows, []string{main.Name, strconv.Itoa(len(main.Categories)), strconv.Itoa(main.TotalSeriesCount()), strconv.Itoa(main.TotalVolumeCount())})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Main Category", "Sub Categories", "Series", "Volumes"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
			))

			if n := diag.Len(); n > 0 {
				fmt.Fprintf(out, "%d diagnostic(s) recorded\n", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rescan, "rescan", false, "Force a full rescan even if a fresh cache entry exists")
	return cmd
}
