package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

var (
	summaryType    string
	summaryBullets bool
)

var summariseCmd = &cobra.Command{
	Use:     "summarise [pdf file]",
	Aliases: []string{"summarize"},
	Short:   "Summarise a single PDF document",
	Long: `Extracts text from the given PDF and streams a summary to stdout.

Summary types:
  short     at most 2 sentences
  detailed  6-8 lines, optionally bulleted (--bullets)
  tabular   a table with at most 6-7 points`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarise,
}

func init() {
	summariseCmd.Flags().StringVarP(&summaryType, "type", "t", "short",
		"summary type: short, detailed or tabular")
	summariseCmd.Flags().BoolVar(&summaryBullets, "bullets", false,
		"use bullet points (detailed summaries only)")
	rootCmd.AddCommand(summariseCmd)
}

func runSummarise(cmd *cobra.Command, args []string) error {
	if ingestService == nil || queryService == nil {
		return errors.New("services not configured")
	}

	kind := domain.SummaryKind(summaryType)
	if !kind.IsValid() {
		return fmt.Errorf("unknown summary type %q", summaryType)
	}

	ctx := context.Background()
	session := newSession()

	report, err := ingestService.IngestPaths(ctx, session, args)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	reportIngest(cmd, report)
	if session.DocumentCount() == 0 {
		return errors.New("no documents could be processed")
	}

	req := domain.SummaryRequest{
		DocumentName: filepath.Base(args[0]),
		Kind:         kind,
		BulletPoints: summaryBullets,
	}

	var printed int
	answer, err := queryService.Summarise(ctx, session, req, func(partial string, _ float64) {
		cmd.Print(partial[printed:])
		printed = len(partial)
	})
	if err != nil {
		return fmt.Errorf("error querying model: %w", err)
	}
	cmd.Printf("\n\nResponse Time: %.2f seconds\n", answer.ElapsedSeconds)
	return nil
}
