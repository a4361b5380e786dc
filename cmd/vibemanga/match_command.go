package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ImTheFrack/VibeManga/internal/config"
	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/index"
	"github.com/ImTheFrack/VibeManga/internal/matcher"
	"github.com/ImTheFrack/VibeManga/internal/parser"
	"github.com/ImTheFrack/VibeManga/internal/scanner"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var rootFlag string
	var malID int64

	cmd := &cobra.Command{
		Use:   "match <title>",
		Short: "Match a title against a library's identity index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			root, err := resolveRoot(cfg, rootArgs(rootFlag))
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
			record := parser.Parse(args[0], 0, parserOptions(cfg))

			hint := matcher.Hint{}
			if malID != 0 {
				hint.ID = &malID
			}

			result := matcher.Match(record, hint, idx, matcher.Options{
				FuzzyAcceptThreshold: cfg.Matching.FuzzyAcceptThreshold,
				FuzzyRefineThreshold: cfg.Matching.FuzzyRefineThreshold,
			})

			if !result.Matched {
				fmt.Fprintf(out, "No match for %q\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "Matched %q -> %s (confidence %.2f, reason %s)\n",
				args[0], result.Series.FolderName, result.Confidence, result.Reason)
			return nil
		},
	}

	cmd.Flags().StringVar(&rootFlag, "root", "", "Library root (overrides the configured default)")
	cmd.Flags().Int64Var(&malID, "id", 0, "External ID hint extracted from context outside the title text")
	return cmd
}

func rootArgs(root string) []string {
	if root == "" {
		return nil
	}
	return []string{root}
}

// parserOptions builds a parser.Options from the configured parsing
// section, shared by every command that needs to re-run the parser.
func parserOptions(cfg *config.Config) parser.Options {
	return parser.Options{
		UndersizedVolumeBytes:  cfg.Parsing.UndersizedVolumeBytes,
		UndersizedChapterBytes: cfg.Parsing.UndersizedChapterBytes,
		MaxRangeSize:           cfg.Parsing.MaxRangeSize,
		YearMin:                cfg.Parsing.YearMin,
		YearMax:                cfg.Parsing.YearMax,
		NoisePhrases:           cfg.Parsing.NoisePhrases,
		ProtectedTokens:        cfg.Parsing.ProtectedTokens,
	}
}
