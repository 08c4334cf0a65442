package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

var (
	askPersonality string
	askCSVOut      string
)

var askCmd = &cobra.Command{
	Use:   "ask [question] [pdf files...]",
	Short: "Ask a one-shot question about one or more PDFs",
	Long: `Extracts text from the given PDF files, asks the question over their
combined text, and streams the answer to stdout.

When the answer contains a pipe-delimited comparison table, --csv-out
writes it as CSV.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askPersonality, "personality", "p", "",
		"answer tone: neutral, formal, casual or technical")
	askCmd.Flags().StringVar(&askCSVOut, "csv-out", "",
		"write a detected comparison table to this CSV file")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if ingestService == nil || queryService == nil {
		return errors.New("services not configured")
	}

	question, paths := args[0], args[1:]
	ctx := context.Background()

	if llmService != nil {
		if err := llmService.Ping(ctx); err != nil {
			return fmt.Errorf("model backend not reachable: %w", err)
		}
	}

	session := newSession()
	if askPersonality != "" {
		session.SetPersonality(domain.Personality(askPersonality))
	}

	report, err := ingestService.IngestPaths(ctx, session, paths)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	reportIngest(cmd, report)
	if session.DocumentCount() == 0 {
		return errors.New("no documents could be processed")
	}

	// Stream fragments to stdout as they arrive.
	var printed int
	answer, err := queryService.Ask(ctx, session, question, func(partial string, _ float64) {
		cmd.Print(partial[printed:])
		printed = len(partial)
	})
	if err != nil {
		return fmt.Errorf("error querying model: %w", err)
	}
	cmd.Printf("\n\nResponse Time: %.2f seconds\n", answer.ElapsedSeconds)

	if askCSVOut != "" && tableService != nil {
		writeAnswerCSV(cmd, answer.Text)
	}
	return nil
}

// writeAnswerCSV extracts a table from the answer and writes it to the
// --csv-out path. Failures are reported but never fail the command: the
// answer itself was already delivered.
func writeAnswerCSV(cmd *cobra.Command, answer string) {
	table, err := tableService.ExtractTable(answer)
	if err != nil {
		if errors.Is(err, domain.ErrNoTable) {
			cmd.PrintErrln("No tabular data detected in the answer.")
		} else {
			cmd.PrintErrf("Error creating CSV: %v\n", err)
		}
		return
	}

	csvData, err := table.CSV()
	if err != nil {
		cmd.PrintErrf("Error creating CSV: %v\n", err)
		return
	}
	if err := os.WriteFile(askCSVOut, []byte(csvData), 0644); err != nil {
		cmd.PrintErrf("Error writing %s: %v\n", askCSVOut, err)
		return
	}
	cmd.Printf("Comparison table written to %s\n", askCSVOut)
}
