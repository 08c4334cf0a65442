package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [keyword] [pdf files...]",
	Short: "Search for a keyword across PDF documents",
	Long: `Extracts text from the given PDFs and performs a case-insensitive
substring scan, printing the matching lines per document.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if ingestService == nil || searchService == nil {
		return errors.New("services not configured")
	}

	keyword, paths := args[0], args[1:]
	ctx := context.Background()
	session := newSession()

	report, err := ingestService.IngestPaths(ctx, session, paths)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	reportIngest(cmd, report)
	if session.DocumentCount() == 0 {
		return errors.New("no documents could be processed")
	}

	result, err := searchService.Search(session, keyword)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, result)
	}
	return outputSearchText(cmd, result)
}

func outputSearchJSON(cmd *cobra.Command, result domain.SearchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, result domain.SearchResult) error {
	if result.Empty() {
		cmd.Println("No matching results found.")
		return nil
	}

	for _, match := range result.Matches {
		cmd.Printf("%s:\n", match.DocumentName)
		for _, line := range match.Lines {
			cmd.Printf("  %s\n", line)
		}
	}
	return nil
}
