// Command pdfchat chats with PDF documents using a locally hosted model.
package main

import (
	"fmt"
	"os"
	"time"

	configfile "github.com/papyrus-labs/pdfchat-cli/internal/adapters/driven/config/file"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driven/export/pdfwriter"
	pdfextract "github.com/papyrus-labs/pdfchat-cli/internal/adapters/driven/extractor/pdf"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driven/llm/ollama"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/cli"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	promptStore, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	llm := ollama.New(ollamaConfig(configStore))
	defer llm.Close()

	ingestService := services.NewIngestService(pdfextract.New())
	queryService, err := services.NewQueryService(llm)
	if err != nil {
		return err
	}
	queryService.SetPromptStore(promptStore)

	cli.SetServices(&cli.Services{
		Ingest: ingestService,
		Query:  queryService,
		Search: services.NewSearchService(),
		Table:  services.NewTableService(),
		Export: services.NewExportService(pdfwriter.New()),
		LLM:    llm,
		Config: configStore,
	})

	return cli.Execute()
}

// ollamaConfig builds the backend configuration from the config store,
// falling back to the adapter defaults for unset keys.
func ollamaConfig(store driven.ConfigStore) ollama.Config {
	cfg := ollama.Config{
		BaseURL: store.GetString(driven.ConfigOllamaBaseURL),
		Model:   store.GetString(driven.ConfigOllamaModel),
	}
	if secs := store.GetInt(driven.ConfigOllamaTimeout); secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	return cfg
}
