// Package cli provides the cobra command tree for pdfchat.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driving"
	"github.com/papyrus-labs/pdfchat-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	ingestService driving.IngestService
	queryService  driving.QueryService
	searchService driving.SearchService
	tableService  driving.TableService
	exportService driving.ExportService
	llmService    driven.LLMService
	configStore   driven.ConfigStore
)

// Services bundles everything the commands need.
type Services struct {
	Ingest driving.IngestService
	Query  driving.QueryService
	Search driving.SearchService
	Table  driving.TableService
	Export driving.ExportService
	LLM    driven.LLMService
	Config driven.ConfigStore
}

// SetServices wires core services into the command tree.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	ingestService = s.Ingest
	queryService = s.Query
	searchService = s.Search
	tableService = s.Table
	exportService = s.Export
	llmService = s.LLM
	configStore = s.Config
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "pdfchat",
	Short: "Chat with your PDF documents using a local model",
	Long: `pdfchat extracts text from PDF files and answers questions or
produces summaries over the combined text using a locally hosted
language model (Ollama).

Documents live only for the duration of a session; nothing is persisted.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print pipeline debug output to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newSession creates the session for a one-shot command, applying the
// configured default personality.
func newSession() *domain.Session {
	session := domain.NewSession()
	if configStore != nil {
		if p := configStore.GetString(driven.ConfigPersonality); p != "" {
			session.SetPersonality(domain.Personality(p))
		}
	}
	return session
}

// reportIngest prints the outcome of an upload batch.
func reportIngest(cmd *cobra.Command, report domain.IngestReport) {
	for _, f := range report.Failed {
		cmd.PrintErrf("Error extracting text from %s: %v\n", f.Name, f.Err)
	}
	for _, name := range report.Skipped {
		logger.Debug("Already processed: %s", name)
	}
	if len(report.Processed) > 0 {
		cmd.Printf("Processed %d document(s).\n", len(report.Processed))
	}
}
